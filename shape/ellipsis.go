// SPDX-License-Identifier: MIT
// Package: latex3d/shape
//
// ellipsis.go — continuation runs ("…and so on") between two points.
//
// Contract:
//   • Exactly three entries, strictly inside the segment, at 2/6, 3/6, 4/6.
//   • Oriented runs carry Transform "rotateY(<θ>turn)" with
//     θ = atan2(−Δz, Δx)/τ, which turns the glyph's x axis onto the edge's
//     horizontal projection before the shared viewing transform applies.
//   • Unoriented runs carry no transform and keep the counter-rotation
//     wrapper, so the glyph always faces the viewer.

package shape

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/latex3d/geom"
)

// ellipsisFractions are the interpolation positions along the edge.
var ellipsisFractions = [3]float64{2.0 / 6, 3.0 / 6, 4.0 / 6}

// Ellipsis returns three glyph entries between start and end.
// Layer is left at zero; generators stamp it.
func Ellipsis(start, end r3.Vec, glyph string, oriented bool) []Entry {
	d := r3.Sub(end, start)

	var transform string
	if oriented {
		transform = RotateYTransform(EdgeTurn(start, end))
	}

	out := make([]Entry, 0, len(ellipsisFractions))
	for _, f := range ellipsisFractions {
		out = append(out, Entry{
			Pos:       r3.Add(start, r3.Scale(f, d)),
			Label:     glyph,
			Transform: transform,
			Kind:      KindGlyph,
		})
	}
	return out
}

// EdgeTurn returns the signed angle, in turns, between the x axis and the
// horizontal-plane projection of start→end.
func EdgeTurn(start, end r3.Vec) float64 {
	return geom.Turns(math.Atan2(-(end.Z - start.Z), end.X-start.X))
}

// RotateYTransform renders a rotation about the vertical axis in turns.
func RotateYTransform(turns float64) string {
	return "rotateY(" + geom.Format(turns) + "turn)"
}

// run stamps layer on an ellipsis run and appends it to entries.
func run(entries []Entry, start, end r3.Vec, glyph string, oriented bool, layer int) []Entry {
	for _, e := range Ellipsis(start, end, glyph, oriented) {
		e.Layer = layer
		entries = append(entries, e)
	}
	return entries
}
