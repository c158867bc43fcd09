// SPDX-License-Identifier: MIT
// Package: latex3d/render
//
// errors.go — sentinel errors for rendering and composition.

package render

import "errors"

// ErrEmptyShape indicates a shape without entries; its bounding box is
// undefined.
var ErrEmptyShape = errors.New("render: empty shape")

// ErrNoFragments indicates a Compose call without fragments.
var ErrNoFragments = errors.New("render: no fragments")

// ErrUnitMismatch indicates composed fragments measured in different units.
var ErrUnitMismatch = errors.New("render: unit mismatch")

// ErrUnknownVariant indicates a color variant outside the fixed vocabulary.
var ErrUnknownVariant = errors.New("render: unknown variant")

// ErrUnknownUnit indicates a CSS length unit other than px, em or rem.
var ErrUnknownUnit = errors.New("render: unknown unit")
