// SPDX-License-Identifier: MIT
// Package: latex3d/shape
//
// impl_pyramid.go — SquarePyramid(n): stacked concentric square rings.
//
// Canonical model (90° internal angles, slope 1:1):
//
//	    3         3   3   3
//	  3 2 3         2   2
//	3 2 1 2 3  ≠  3   1   3
//	  3 2 3         2   2
//	    3         3   3   3
//	    ✓             x
//
//   • Layer y (0..n−1): every (u,v) ∈ [0,y]², v outer, u inner, at
//     (u−v, y, u+v−y); label y+1 (or WithText).
//   • Count: Σ (y+1)².
//   • Centroid: mean of the entries.
//
// Continuation options are ignored by this family.
//
// Complexity: O(n³) entries.

package shape

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/latex3d/geom"
)

// SquarePyramid returns the generator of the n-layer square pyramid.
func SquarePyramid(n int) Generator {
	return func(_ geom.Frame, cfg shapeConfig) (Shape, error) {
		if err := validateLayers(MethodSquarePyramid, n); err != nil {
			return Shape{}, err
		}
		s := Shape{Family: FamilySquarePyramid, N: n, Entries: pyramidLattice(n, cfg, nil)}
		s.Centroid = s.Mean()
		return s, nil
	}
}

// pyramidLattice emits the diamond lattice in layer order. When mirror is
// non-nil it is called after every entry and may append a companion entry
// (used by Octahedron to keep each mirror next to its source).
func pyramidLattice(n int, cfg shapeConfig, mirror func(e Entry) (Entry, bool)) []Entry {
	entries := make([]Entry, 0, squarePyramidNumber(n))
	for y := 0; y < n; y++ {
		label := cfg.numericLabel(y)
		for v := 0; v <= y; v++ {
			for u := 0; u <= y; u++ {
				e := Entry{
					Pos:   r3.Vec{X: float64(u - v), Y: float64(y), Z: float64(u + v - y)},
					Label: label,
					Layer: y,
					Kind:  KindNumeric,
				}
				entries = append(entries, e)
				if mirror != nil {
					if m, ok := mirror(e); ok {
						entries = append(entries, m)
					}
				}
			}
		}
	}
	return entries
}

// squarePyramidNumber returns Σ_{y<n} (y+1)² = n(n+1)(2n+1)/6.
func squarePyramidNumber(n int) int {
	return n * (n + 1) * (2*n + 1) / 6
}
