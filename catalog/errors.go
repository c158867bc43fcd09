// SPDX-License-Identifier: MIT
// Package: latex3d/catalog
//
// errors.go — sentinel errors for catalog loading and validation.
//
// Validation errors carry the item path ("12222105/parts[1]") and wrap both
// ErrInvalidItem and, where one exists, the underlying package sentinel
// (shape.ErrUnknownFamily, render.ErrUnknownVariant).

package catalog

import "errors"

// ErrBadCode indicates an empty or non-numeric placeholder code.
var ErrBadCode = errors.New("catalog: bad code")

// ErrDuplicateCode indicates two top-level items sharing one code.
var ErrDuplicateCode = errors.New("catalog: duplicate code")

// ErrInvalidItem indicates an item whose settings cannot be rendered.
var ErrInvalidItem = errors.New("catalog: invalid item")

// ErrUnknownCode indicates a lookup of a code the catalog does not define.
var ErrUnknownCode = errors.New("catalog: unknown code")

// ErrUnsupportedFormat indicates a catalog file extension other than
// .yaml, .yml or .toml.
var ErrUnsupportedFormat = errors.New("catalog: unsupported format")
