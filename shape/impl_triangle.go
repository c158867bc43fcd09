// SPDX-License-Identifier: MIT
// Package: latex3d/shape
//
// impl_triangle.go — Triangle(n): flat triangular numbers.
//
// Canonical model:
//   • Layer y (0..n−1) holds y+1 entries centered on x = 0:
//       x = (u − y/2)·(2/√3), u = 0..y;   y = layer;   z = 0
//     so unit layer steps give equilateral spacing.
//   • Label: y+1, or the WithText literal.
//   • Centroid at 2/3 of the altitude: (0, 2(n−1)/3, 0).
//
// Continuation (WithTo):
//   • Symbolic row at y = n+1 (corners only), labelled "to", or "to−1" with a
//     second row at y = n+2 labelled "to" when WithToMulti is set.
//   • A run of DefaultGlyph from each corner of row n−1 to the same corner of
//     the first symbolic row (left, then right).
//   • WithToMulti: an oriented ring-glyph run along the outer row.
//
// Complexity: O(n²) entries.

package shape

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/latex3d/geom"
)

// Triangle returns the generator of the n-row triangular number diagram.
func Triangle(n int) Generator {
	return func(_ geom.Frame, cfg shapeConfig) (Shape, error) {
		if err := validateLayers(MethodTriangle, n); err != nil {
			return Shape{}, err
		}

		entries := make([]Entry, 0, n*(n+1)/2)
		for y := 0; y < n; y++ {
			label := cfg.numericLabel(y)
			for u := 0; u <= y; u++ {
				entries = append(entries, Entry{
					Pos:   trianglePoint(float64(y), float64(u)),
					Label: label,
					Layer: y,
					Kind:  KindNumeric,
				})
			}
		}

		if cfg.continues() {
			entries = triangleContinuation(entries, n, cfg)
		}

		return Shape{
			Family:   FamilyTriangle,
			N:        n,
			Entries:  entries,
			Centroid: r3.Vec{Y: 2 * float64(n-1) / 3},
			Align:    triangleAlign,
			Flat:     true,
		}, nil
	}
}

// trianglePoint places entry u of row y.
func trianglePoint(y, u float64) r3.Vec {
	return r3.Vec{X: (u - y/2) * triangleSpacing, Y: y}
}

// triangleRowEnds returns the left and right corner of row y.
func triangleRowEnds(y float64) (left, right r3.Vec) {
	return trianglePoint(y, 0), trianglePoint(y, y)
}

// triangleContinuation appends the symbolic rows and their runs.
func triangleContinuation(entries []Entry, n int, cfg shapeConfig) []Entry {
	last := n - 1
	ring := n + 1
	inner, outer := cfg.ringLabels()

	fromL, fromR := triangleRowEnds(float64(last))
	toL, toR := triangleRowEnds(float64(ring))

	for _, edge := range [2][2]r3.Vec{{fromL, toL}, {fromR, toR}} {
		entries = run(entries, edge[0], edge[1], cfg.glyph, false, ring)
		t := terminal(inner, ring)
		t.Pos = edge[1]
		entries = append(entries, t)
	}

	if !cfg.toMulti {
		return entries
	}

	outerRing := ring + 1
	outL, outR := triangleRowEnds(float64(outerRing))
	for _, p := range [2]r3.Vec{outL, outR} {
		t := terminal(outer, outerRing)
		t.Pos = p
		entries = append(entries, t)
	}
	return run(entries, outL, outR, cfg.ringGlyph, true, outerRing)
}
