// SPDX-License-Identifier: MIT
// Package: latex3d/shape
//
// errors.go — sentinel errors for the shape package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` ("Tetrahedron: n must be ≥ 1,
//     got 0: shape: too few layers").
//   • Generators never panic; option constructors (WithX...) panic on
//     meaningless values.

package shape

import (
	"errors"
	"fmt"
)

// ErrTooFewLayers indicates a layer count below MinLayers.
// Usage: if errors.Is(err, ErrTooFewLayers) { /* reject n */ }.
var ErrTooFewLayers = errors.New("shape: too few layers")

// ErrUnknownFamily indicates a family name or value outside the closed set
// of figurate solids.
var ErrUnknownFamily = errors.New("shape: unknown family")

// ErrConstructFailed indicates a structural failure of the generation
// pipeline itself (e.g. a nil Generator passed to Build).
var ErrConstructFailed = errors.New("shape: construction failed")

// shapeErrorf wraps a sentinel with the generator tag and a formatted
// message: "<Method>: <message>: <sentinel>".
func shapeErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
