// SPDX-License-Identifier: MIT
// Package: latex3d/shape
//
// impl_octahedron.go — Octahedron(n) and its axis-permuted views.
//
// Canonical model:
//   • The SquarePyramid lattice, each entry of layer y < n−1 followed
//     immediately by its mirror through the equator plane y = n−1
//     (y' = 2(n−1) − y). The equator itself is not duplicated.
//   • Count: 2·P(n) − n², P = square pyramidal number.
//   • OctahedronX: (x,y,z) → (y−(n−1), x+n−1, z), the solid viewed down x.
//   • OctahedronZ: (x,y,z) → (x, z+n−1, y−(n−1)), the solid viewed down z.
//     Labels and layers follow the source entry.
//   • Centroid: mean of the entries (the equator center).
//
// Complexity: O(n³) entries.

package shape

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/latex3d/geom"
)

// Octahedron returns the generator of the n-layer octahedron.
func Octahedron(n int) Generator {
	return func(_ geom.Frame, cfg shapeConfig) (Shape, error) {
		if err := validateLayers(MethodOctahedron, n); err != nil {
			return Shape{}, err
		}
		s := Shape{Family: FamilyOctahedron, N: n, Entries: octahedronLattice(n, cfg)}
		s.Centroid = s.Mean()
		return s, nil
	}
}

// OctahedronX returns the octahedron with the x and y roles swapped.
func OctahedronX(n int) Generator {
	return permutedOctahedron(MethodOctahedronX, FamilyOctahedronX, n, func(p r3.Vec, m float64) r3.Vec {
		return r3.Vec{X: p.Y - m, Y: p.X + m, Z: p.Z}
	})
}

// OctahedronZ returns the octahedron with the y and z roles swapped.
func OctahedronZ(n int) Generator {
	return permutedOctahedron(MethodOctahedronZ, FamilyOctahedronZ, n, func(p r3.Vec, m float64) r3.Vec {
		return r3.Vec{X: p.X, Y: p.Z + m, Z: p.Y - m}
	})
}

// octahedronLattice emits the pyramid lattice interleaved with mirrors.
func octahedronLattice(n int, cfg shapeConfig) []Entry {
	equator := n - 1
	return pyramidLattice(n, cfg, func(e Entry) (Entry, bool) {
		if e.Layer == equator {
			return Entry{}, false
		}
		m := e
		m.Layer = 2*equator - e.Layer
		m.Pos.Y = float64(m.Layer)
		return m, true
	})
}

// permutedOctahedron builds the octahedron and remaps every position with
// permute(p, n−1).
func permutedOctahedron(method string, fam Family, n int, permute func(p r3.Vec, m float64) r3.Vec) Generator {
	return func(_ geom.Frame, cfg shapeConfig) (Shape, error) {
		if err := validateLayers(method, n); err != nil {
			return Shape{}, err
		}
		m := float64(n - 1)
		entries := octahedronLattice(n, cfg)
		for i := range entries {
			entries[i].Pos = permute(entries[i].Pos, m)
		}
		s := Shape{Family: fam, N: n, Entries: entries}
		s.Centroid = s.Mean()
		return s, nil
	}
}
