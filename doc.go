// Package latex3d lays out figurate-number solids (triangles, square
// pyramids, octahedra and tetrahedra of numbered points) in 3D and emits
// them as HTML fragments positioned with CSS transforms, ready to be
// spun by an external stylesheet.
//
// 🚀 What is in the box?
//
//	• geom/    — axis rotations, the canonical tilt and the tetrahedral
//	             lattice frame (O, A, B, C and the edge vectors)
//	• shape/   — one generator per family, continuation layers ("…n"),
//	             ellipsis runs and 3-fold rotated replicas
//	• render/  — per-entry translate3d markup, bounding boxes, color
//	             variants and side-by-side composition
//	• catalog/ — numeric placeholder codes → fragments, YAML/TOML catalog
//	             files and the streaming line substituter
//	• cmd/latex3d — the command-line filter used as a post-processing hook
//
// ✨ Guarantees
//
//   - Deterministic: identical parameters give byte-identical HTML.
//   - Pure: the frame is computed once and passed explicitly; no globals.
//   - Total: every valid generator call yields at least one entry.
//
// Quick start:
//
//	fr := geom.NewFrame()
//	s, _ := shape.Build(fr, shape.Tetrahedron(3), shape.WithTo("n"))
//	f, _ := render.Render(s, render.WithClass(render.VariantTeal))
//	fmt.Println(f.HTML())
//
// See the examples/ directory for complete programs.
package latex3d
