// SPDX-License-Identifier: MIT
// Package: latex3d/shape
//
// symmetry.go — 3-fold rotated replicas about a shape's centroid.
//
// Model:
//   p' = C + RotateY(i·τ/3) · RotateX(Align) · (p − C),  C = Shape.Centroid
//
//   • Tetrahedron: Align = acos(−1/3) tilts the front vertex B to the top.
//   • Triangle:    Align = acos(−1/3) − τ/4 leans the flat triangle back like
//     a tetrahedral face (bottom edge toward the viewer).
//   • Other families: Align = 0 (pure 3-fold turn).
//
// Guarantees:
//   • The centroid is a fixed point of every replica.
//   • Replica(s, i) and Replica(s, i+3) coincide within rounding.
//   • Labels, styles, layers and order are carried over; the entry slice is
//     fresh.
//   • Oriented glyphs keep lying along their edge: the replica rotation is
//     prepended to their custom transform in CSS form.

package shape

import (
	"github.com/katalvlaran/latex3d/geom"
)

// ReplicaCount is the order of the replica symmetry.
const ReplicaCount = 3

// ReplicaRotation returns the rotation (about the centroid) used for
// replica i of s.
func ReplicaRotation(s Shape, i int) geom.Rotation {
	return geom.RotateX(s.Align).Then(geom.RotateY(float64(i) * geom.Tau / ReplicaCount))
}

// Replica returns copy i of s rotated about its centroid.
// Complexity: O(len(s.Entries)).
func Replica(s Shape, i int) Shape {
	rot := ReplicaRotation(s, i)
	out := s.Clone()
	prefix := replicaTransform(s.Align, i)
	for idx := range out.Entries {
		out.Entries[idx].Pos = rot.ApplyAbout(s.Centroid, s.Entries[idx].Pos)
		if t := s.Entries[idx].Transform; t != "" {
			out.Entries[idx].Transform = prefix + " " + t
		}
	}
	out.Flat = s.Flat && s.Align == 0 && i%ReplicaCount == 0
	return out
}

// replicaTransform renders ReplicaRotation as a CSS transform list. CSS
// composes left to right on the element, so the y turn comes first.
func replicaTransform(align float64, i int) string {
	return RotateYTransform(float64(i)/ReplicaCount) + " rotateX(" + geom.Format(geom.Turns(align)) + "turn)"
}

// Replicas returns the three replicas of s in index order.
func Replicas(s Shape) [ReplicaCount]Shape {
	var out [ReplicaCount]Shape
	for i := range out {
		out[i] = Replica(s, i)
	}
	return out
}
