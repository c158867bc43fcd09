// SPDX-License-Identifier: MIT
// Package: latex3d/geom
//
// frame.go — the tetrahedral lattice frame.
//
// Construction:
//   • Four alternating cube vertices (pairwise joined only by face diagonals)
//     form a regular tetrahedron with edge √2·(cube edge).
//   • Tilt stands the (1,1,1) vertex straight up; a half turn about x moves
//     the result into y-down screen coordinates.
//   • O is translated to the origin and the solid is scaled uniformly so the
//     base plane sits at height 1.
//
// Exactness:
//   • Heights are read from the integer diagonal projection of the untilted
//     cube vertices, so O.y == 0 and A.y == B.y == C.y == 1 hold exactly.
//   • x and z come from the rotation and are exact up to rounding.

package geom

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Corner names one of the three base corners of a lattice layer.
type Corner int

// Base corners in emission order.
const (
	CornerA Corner = iota // j = 0, i = 0
	CornerB               // j = k, i = 0 (front)
	CornerC               // j = k, i = k
)

// Corners lists the base corners in emission order.
var Corners = [3]Corner{CornerA, CornerB, CornerC}

// String returns the corner letter.
func (c Corner) String() string {
	switch c {
	case CornerA:
		return "A"
	case CornerB:
		return "B"
	case CornerC:
		return "C"
	default:
		return "?"
	}
}

// Frame holds the normalized tetrahedron and the edge vectors spanning its
// lattice. It is immutable once built; pass it by value.
type Frame struct {
	O, A, B, C r3.Vec // apex and base vertices
	OA, AB, BC r3.Vec // edge vectors A−O, B−A, C−B
}

// cubeVertices are the alternating cube vertices; the first one lies on the
// body diagonal that Tilt stands upright.
var cubeVertices = [4]r3.Vec{
	{X: 1, Y: 1, Z: 1},
	{X: 1, Y: -1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1},
}

// NewFrame derives the canonical frame. It is a pure function; callers
// compute it once and thread the value into generators.
func NewFrame() Frame {
	tilt := Tilt()

	// 1) Tilt the half-size cube vertices so the first one points up.
	var tilted [4]r3.Vec
	for i, v := range cubeVertices {
		tilted[i] = tilt.Apply(r3.Scale(0.5, v))
	}
	apex := tilted[0]

	// 2) Uniform scale taking the apex-to-base height to 1.
	scale := 1 / (apex.Y - tilted[1].Y)

	// 3) Screen coordinates: translate apex to origin, half turn about x
	//    (y and z flip), scale; height from the exact diagonal projection.
	var pts [4]r3.Vec
	for i, v := range tilted {
		pts[i] = r3.Vec{
			X: scale * (v.X - apex.X),
			Y: diagonalHeight(cubeVertices[i]),
			Z: scale * (apex.Z - v.Z),
		}
	}

	return Frame{
		O:  pts[0],
		A:  pts[1],
		B:  pts[2],
		C:  pts[3],
		OA: r3.Sub(pts[1], pts[0]),
		AB: r3.Sub(pts[2], pts[1]),
		BC: r3.Sub(pts[3], pts[2]),
	}
}

// diagonalHeight maps a cube vertex to its normalized depth below the apex:
// (3 − (x+y+z)) / 4, i.e. 0 for (1,1,1) and 1 for the other three.
func diagonalHeight(v r3.Vec) float64 {
	return (3 - (v.X + v.Y + v.Z)) / 4
}

// Point returns O + k·OA + j·AB + i·BC. Fractional coefficients are allowed
// (continuation rings and interpolated glyphs use them).
func (f Frame) Point(k, j, i float64) r3.Vec {
	p := r3.Add(f.O, r3.Scale(k, f.OA))
	p = r3.Add(p, r3.Scale(j, f.AB))
	return r3.Add(p, r3.Scale(i, f.BC))
}

// Corner returns corner c of layer k.
func (f Frame) Corner(k float64, c Corner) r3.Vec {
	switch c {
	case CornerB:
		return f.Point(k, k, 0)
	case CornerC:
		return f.Point(k, k, k)
	default:
		return f.Point(k, 0, 0)
	}
}

// LayerCenter returns the centroid of layer k's triangle, which lies on the
// vertical axis through the apex.
func (f Frame) LayerCenter(k float64) r3.Vec {
	return f.Point(k, 2*k/3, k/3)
}

// Centroid returns the centroid of the solid spanned by layers 0..k, which
// sits at 3/4 of its altitude below the apex.
func (f Frame) Centroid(k float64) r3.Vec {
	return r3.Scale(0.25, r3.Add(r3.Add(f.O, f.Corner(k, CornerA)), r3.Add(f.Corner(k, CornerB), f.Corner(k, CornerC))))
}

// EdgeLength returns the length of the frame's unit edge.
func (f Frame) EdgeLength() float64 { return r3.Norm(f.OA) }
