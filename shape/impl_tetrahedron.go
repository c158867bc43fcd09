// SPDX-License-Identifier: MIT
// Package: latex3d/shape
//
// impl_tetrahedron.go — Tetrahedron(n): the frame lattice.
//
// Canonical model:
//   • Layer k (0..n−1): O + k·OA + j·AB + i·BC for 0 ≤ i ≤ j ≤ k, j outer.
//     At k = 0 the layer is the apex alone; layer k's corners are k·A, k·B, k·C.
//   • Count per layer (k+1)(k+2)/2; total n(n+1)(n+2)/6.
//   • Label k+1, or the WithText literal.
//   • Centroid at 3/4 of the altitude; Align brings front vertex B on top.
//
// Continuation (WithTo):
//   • Numeric layers stop at n−1; the first symbolic ring is layer n+1.
//   • For each base corner A, B, C: a DefaultGlyph run from the corner of
//     layer n−1 to the corner of layer n+1, then the ring's terminal label
//     ("to", or "to−1" under WithToMulti).
//   • WithToCenter: the same run + terminal on the central axis, emitted
//     after the three corners.
//   • WithToMulti: terminals "to" at layer n+2 (corners, plus center with
//     WithToCenter) and oriented ring-glyph runs along that ring's edges
//     A→B, B→C, C→A.
//
// Complexity: O(n³) entries + O(1) continuation entries.

package shape

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/latex3d/geom"
)

// Tetrahedron returns the generator of the n-layer tetrahedron.
func Tetrahedron(n int) Generator {
	return func(fr geom.Frame, cfg shapeConfig) (Shape, error) {
		if err := validateLayers(MethodTetrahedron, n); err != nil {
			return Shape{}, err
		}

		entries := make([]Entry, 0, tetrahedralNumber(n))
		for k := 0; k < n; k++ {
			label := cfg.numericLabel(k)
			for j := 0; j <= k; j++ {
				for i := 0; i <= j; i++ {
					entries = append(entries, Entry{
						Pos:   fr.Point(float64(k), float64(j), float64(i)),
						Label: label,
						Layer: k,
						Kind:  KindNumeric,
					})
				}
			}
		}

		if cfg.continues() {
			entries = tetrahedronContinuation(fr, entries, n, cfg)
		}

		return Shape{
			Family:   FamilyTetrahedron,
			N:        n,
			Entries:  entries,
			Centroid: fr.Centroid(float64(n - 1)),
			Align:    tetrahedronAlign,
		}, nil
	}
}

// tetrahedronContinuation appends runs and symbolic rings after the numeric
// layers.
func tetrahedronContinuation(fr geom.Frame, entries []Entry, n int, cfg shapeConfig) []Entry {
	last := float64(n - 1)
	ring := n + 1
	inner, outer := cfg.ringLabels()

	// ringPoints lists the anchor points of a layer: corners, then center.
	ringPoints := func(k float64) []r3.Vec {
		pts := make([]r3.Vec, 0, 4)
		for _, c := range geom.Corners {
			pts = append(pts, fr.Corner(k, c))
		}
		if cfg.toCenter {
			pts = append(pts, fr.LayerCenter(k))
		}
		return pts
	}

	from := ringPoints(last)
	to := ringPoints(float64(ring))
	for idx := range from {
		entries = run(entries, from[idx], to[idx], cfg.glyph, false, ring)
		t := terminal(inner, ring)
		t.Pos = to[idx]
		entries = append(entries, t)
	}

	if !cfg.toMulti {
		return entries
	}

	outerRing := ring + 1
	outerPts := ringPoints(float64(outerRing))
	for _, p := range outerPts {
		t := terminal(outer, outerRing)
		t.Pos = p
		entries = append(entries, t)
	}
	for idx := range geom.Corners {
		start := outerPts[idx]
		end := outerPts[(idx+1)%len(geom.Corners)]
		entries = run(entries, start, end, cfg.ringGlyph, true, outerRing)
	}
	return entries
}

// tetrahedralNumber returns n(n+1)(n+2)/6.
func tetrahedralNumber(n int) int {
	return n * (n + 1) * (n + 2) / 6
}
