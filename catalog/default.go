// SPDX-License-Identifier: MIT
// Package: latex3d/catalog
//
// default.go — the built-in placeholder table.
//
// Codes:
//   1222201   square pyramid, n=3
//   12222101  octahedron, n=3
//   12222102  octahedron, magenta
//   12222103  octahedron viewed down x, orange
//   12222104  octahedron viewed down z, tan
//   12222105  the three octahedron views side by side at scale 50
//   122201    tetrahedron, n=3
//   122101    triangle, n=4
//   122102    triangle, n=3, continued to "n"
//   122103    three aligned triangle replicas overlaid
//   122202    tetrahedron, n=2, continued to "n"
//   122203    tetrahedron, n=2, two symbolic layers and the center axis, teal
//   122204    three tetrahedron replicas overlaid

package catalog

// CompositeScale is the geometry scale of the built-in composites.
const CompositeScale = 50

// Default returns the built-in catalog. Each call returns a fresh value.
func Default() Catalog {
	return Catalog{Items: []Item{
		{Code: "1222201", Family: "pyramid", N: 3},
		{Code: "12222101", Family: "octahedron", N: 3},
		{Code: "12222102", Family: "octahedron", N: 3, Variant: "magenta"},
		{Code: "12222103", Family: "octahedronx", N: 3, Variant: "orange"},
		{Code: "12222104", Family: "octahedronz", N: 3, Variant: "tan"},
		{Code: "12222105", Parts: []Item{
			{Family: "octahedron", N: 3, Variant: "magenta", Scale: CompositeScale},
			{Family: "octahedronx", N: 3, Variant: "orange", Scale: CompositeScale},
			{Family: "octahedronz", N: 3, Variant: "tan", Scale: CompositeScale},
		}},
		{Code: "122201", Family: "tetrahedron", N: 3},
		{Code: "122101", Family: "triangle", N: 4},
		{Code: "122102", Family: "triangle", N: 3, To: "n"},
		{Code: "122103", Shift: float(0), Parts: replicaParts("triangle", 3)},
		{Code: "122202", Family: "tetrahedron", N: 2, To: "n"},
		{Code: "122203", Family: "tetrahedron", N: 2, To: "n", ToMulti: true, ToCenter: true, Variant: "teal"},
		{Code: "122204", Shift: float(0), Parts: replicaParts("tetrahedron", 3)},
	}}
}

// replicaParts returns the three replicas of one shape in the default,
// magenta and orange variants.
func replicaParts(family string, n int) []Item {
	variants := [...]string{"", "magenta", "orange"}
	parts := make([]Item, len(variants))
	for i, v := range variants {
		parts[i] = Item{Family: family, N: n, Replica: integer(i), Variant: v}
	}
	return parts
}

func integer(v int) *int { return &v }
func float(v float64) *float64 { return &v }
