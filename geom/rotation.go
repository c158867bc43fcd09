// SPDX-License-Identifier: MIT
// Package: latex3d/geom
//
// rotation.go — axis rotations, composition and the canonical tilt.
//
// Contract:
//   • RotateX/RotateY/RotateZ are right-handed: a positive angle turns
//     counter-clockwise when looking down the axis toward the origin.
//   • The zero Rotation is the identity.
//   • r.Then(s) applies r first, then s.
//
// Complexity: every operation is O(1).

package geom

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

// Fixed angles of the cube/tetrahedron construction.
var (
	// BodyFaceDiagonalAngle is the angle between a cube's body diagonal and a
	// face diagonal leaving the same vertex, acos(−1/√3).
	BodyFaceDiagonalAngle = math.Acos(-1 / math.Sqrt(3))

	// TetrahedralAngle is the angle subtended at a regular tetrahedron's
	// centroid by two of its vertices, acos(−1/3).
	TetrahedralAngle = math.Acos(-1.0 / 3.0)
)

// Principal axes.
var (
	AxisX = r3.Vec{X: 1}
	AxisY = r3.Vec{Y: 1}
	AxisZ = r3.Vec{Z: 1}
)

// Rotation is a proper 3D rotation stored as a unit quaternion.
type Rotation struct {
	q quat.Number
}

// Identity returns the rotation that leaves every vector unchanged.
func Identity() Rotation { return Rotation{q: quat.Number{Real: 1}} }

// RotateAbout returns the right-handed rotation by theta radians about axis.
// A zero axis yields the identity.
func RotateAbout(axis r3.Vec, theta float64) Rotation {
	if r3.Norm(axis) == 0 {
		return Identity()
	}
	return Rotation{q: quat.Number(r3.NewRotation(theta, axis))}
}

// RotateX returns the right-handed rotation by theta radians about the x axis.
func RotateX(theta float64) Rotation { return RotateAbout(AxisX, theta) }

// RotateY returns the right-handed rotation by theta radians about the y axis.
func RotateY(theta float64) Rotation { return RotateAbout(AxisY, theta) }

// RotateZ returns the right-handed rotation by theta radians about the z axis.
func RotateZ(theta float64) Rotation { return RotateAbout(AxisZ, theta) }

// quaternion resolves the zero value to the identity quaternion.
func (r Rotation) quaternion() quat.Number {
	if r.q == (quat.Number{}) {
		return quat.Number{Real: 1}
	}
	return r.q
}

// Then returns the rotation that applies r first and next afterwards.
func (r Rotation) Then(next Rotation) Rotation {
	return Rotation{q: quat.Mul(next.quaternion(), r.quaternion())}
}

// Apply rotates v about the origin.
func (r Rotation) Apply(v r3.Vec) r3.Vec {
	return r3.Rotation(r.quaternion()).Rotate(v)
}

// ApplyAbout rotates v about the given center point.
func (r Rotation) ApplyAbout(center, v r3.Vec) r3.Vec {
	return r3.Add(center, r.Apply(r3.Sub(v, center)))
}

// Inverse returns the rotation undoing r.
func (r Rotation) Inverse() Rotation {
	return Rotation{q: quat.Conj(r.quaternion())}
}

// Tilt returns the composite rotation that stands the cube body diagonal
// (1,1,1) on the vertical axis (0,1,0).
//
// Stage 1: a −τ/8 turn about y brings (1,1,1) into the x=0 plane as (0,1,√2).
// Stage 2: a turn about x makes it vertical. Measured against the upward axis
// the required angle is the supplement of BodyFaceDiagonalAngle, hence the
// half-turn offset.
func Tilt() Rotation {
	return RotateY(-Tau / 8).Then(RotateX(BodyFaceDiagonalAngle - Tau/2))
}

// Turns converts radians to full-turn units (τ rad = 1 turn).
func Turns(theta float64) float64 { return theta / Tau }
