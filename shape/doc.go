// Package shape generates the labeled point lattices of the figurate-number
// solids rendered by latex3d, in the same functional-options style used for
// every constructor in this module.
//
// The package offers the following key components:
//
//   - Generators (one per family, implemented in impl_*.go):
//     – Triangle(n):       flat triangular numbers, layer y has y+1 entries.
//     – SquarePyramid(n):  stacked diamonds, layer y has (y+1)² entries.
//     – Octahedron(n):     pyramid plus its mirror below the equator.
//     – OctahedronX(n), OctahedronZ(n): the octahedron viewed down x / z.
//     – Tetrahedron(n):    the frame lattice O + k·OA + j·AB + i·BC.
//   - Options (ShapeParameters):
//     – WithTo(label):     symbolic continuation layer ("…and so on").
//     – WithText(text):    literal label replacing every numeric label.
//     – WithToMulti():     two trailing symbolic layers instead of one.
//     – WithToCenter():    continuation run and terminal on the center axis.
//     – WithLabelNudge / WithNudge: horizontal label corrections.
//   - Ellipsis: three interpolated glyph entries along an edge, optionally
//     turned to lie along the edge in the horizontal plane.
//   - Replica: 3-fold rotated copies about a shape's centroid.
//
// Guarantees:
//
//   - Determinism: identical generator, frame and options ⇒ identical entry
//     sequences (coordinates, labels and order).
//   - Every valid call (n ≥ MinLayers) yields at least one entry.
//   - Invalid sizes surface as ErrTooFewLayers; option constructors panic on
//     meaningless values; generators never panic.
//   - Entries are never shared between shapes: post-processing and Replica
//     work on fresh copies.
package shape
