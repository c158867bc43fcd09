// Package geom provides the rotation math and the tetrahedral lattice frame
// shared by every figurate-solid generator in latex3d.
//
// The package offers two building blocks:
//
//   - Rotation: right-handed axis rotations (RotateX/RotateY/RotateZ), their
//     composition (Then) and the canonical Tilt that stands the cube body
//     diagonal (1,1,1) on the vertical axis.
//   - Frame: the apex O and base vertices A, B, C of a regular tetrahedron
//     inscribed in a cube, expressed in y-down screen coordinates with
//     O.y = 0 and A.y = B.y = C.y = 1, plus the edge vectors OA, AB, BC that
//     span the barycentric-style lattice O + k·OA + j·AB + i·BC.
//
// Coordinates:
//
//	Rotations work in a right-handed world where +y points up. NewFrame
//	converts the tilted tetrahedron into the screen convention used by the
//	renderer (+y down, +z toward the viewer) with a half turn about x.
//
// Guarantees:
//
//   - Pure functions of their arguments; no package-level mutable state.
//   - Frame is a small value type: compute it once with NewFrame and pass it
//     to the generators explicitly. It is safe for concurrent reads.
//   - Tilt maps (1,1,1)/√3 onto (0,1,0) to within 1e-9.
//
// Vectors are gonum's r3.Vec; rotations are unit quaternions (gonum num/quat)
// applied through r3.Rotation.
package geom
