// SPDX-License-Identifier: MIT
// Package: latex3d/shape
//
// api.go — thin public entry-points for the shape package.
//
// Design contract:
//   • One orchestrator: Build(frame, gen, opts...). Resolves options once,
//     runs the generator, then applies the label post-processing pass.
//   • Generators are declared in impl_*.go, one file per family.
//   • The frame is an explicit argument; nothing is read from globals.
//   • Determinism: same frame/generator/options ⇒ identical shapes.

package shape

import (
	"fmt"

	"github.com/katalvlaran/latex3d/geom"
)

// Generator produces a shape from the lattice frame and the resolved
// configuration. Generators MUST:
//   - Validate n early and return ErrTooFewLayers (no panics).
//   - Emit entries in a stable, documented order.
//   - Return a fresh entry slice on every call.
type Generator func(fr geom.Frame, cfg shapeConfig) (Shape, error)

// Build resolves opts, runs gen against fr and post-processes the fresh
// entry sequence (label nudges). Generator errors are wrapped as
// "Build: %w"; callers branch with errors.Is.
//
// Complexity: O(len(opts)) + cost of gen + O(len(entries)·len(nudges)).
func Build(fr geom.Frame, gen Generator, opts ...Option) (Shape, error) {
	if gen == nil {
		return Shape{}, fmt.Errorf("Build: nil generator: %w", ErrConstructFailed)
	}

	// Resolve deterministic configuration from functional options.
	cfg := newShapeConfig(opts...)

	s, err := gen(fr, cfg)
	if err != nil {
		return Shape{}, fmt.Errorf("Build: %w", err)
	}
	if len(s.Entries) == 0 {
		// Every valid generator call yields at least one entry.
		return Shape{}, fmt.Errorf("Build: %s produced no entries: %w", s.Family, ErrConstructFailed)
	}

	s.Entries = postProcess(s.Entries, s.Flat, cfg)
	return s, nil
}

// ForFamily returns the generator of family f with n layers.
func ForFamily(f Family, n int) (Generator, error) {
	switch f {
	case FamilyTriangle:
		return Triangle(n), nil
	case FamilySquarePyramid:
		return SquarePyramid(n), nil
	case FamilyOctahedron:
		return Octahedron(n), nil
	case FamilyOctahedronX:
		return OctahedronX(n), nil
	case FamilyOctahedronZ:
		return OctahedronZ(n), nil
	case FamilyTetrahedron:
		return Tetrahedron(n), nil
	default:
		return nil, fmt.Errorf("ForFamily(%d): %w", int(f), ErrUnknownFamily)
	}
}
