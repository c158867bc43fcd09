// SPDX-License-Identifier: MIT
// Package: latex3d/shape
//
// types.go — Entry, Shape and the Family enumeration.

package shape

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Kind classifies an entry by the role it plays in the diagram.
type Kind int

const (
	KindNumeric  Kind = iota // lattice point of a numeric layer
	KindTerminal             // symbolic continuation label ("n", "n−1")
	KindGlyph                // interpolated continuation glyph
)

// String returns a readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindTerminal:
		return "terminal"
	case KindGlyph:
		return "glyph"
	default:
		return "unknown"
	}
}

// Entry is one labeled point of a shape.
//
// Style and Transform are optional. A non-empty Transform marks an oriented
// glyph: the renderer appends it after the positional translation and emits
// the label without the counter-rotation wrapper.
type Entry struct {
	Pos       r3.Vec // shape-local position, y down
	Label     string // display label
	Style     string // optional CSS declarations appended to the entry
	Transform string // optional custom CSS transform
	Layer     int    // generation layer; symbolic rings continue past n−1
	Kind      Kind
}

// Shape is an ordered, labeled point set for one generated instance.
type Shape struct {
	Family   Family
	N        int     // numeric layer count
	Entries  []Entry // emission order
	Centroid r3.Vec  // pivot used by Replica
	Align    float64 // x-axis alignment angle used by Replica (radians)
	Flat     bool    // strictly 2-D (z == 0) rendering
}

// Len returns the number of entries.
func (s Shape) Len() int { return len(s.Entries) }

// Clone returns a copy whose entry slice is not shared with s.
func (s Shape) Clone() Shape {
	out := s
	out.Entries = append([]Entry(nil), s.Entries...)
	return out
}

// Count returns the number of entries of the given kind.
func (s Shape) Count(kind Kind) int {
	n := 0
	for _, e := range s.Entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// LayerCounts returns the numeric entry count per layer, indexed from 0 up
// to the deepest numeric layer (2n−2 for the octahedra, n−1 otherwise).
func (s Shape) LayerCounts() []int {
	deepest := -1
	for _, e := range s.Entries {
		if e.Kind == KindNumeric && e.Layer > deepest {
			deepest = e.Layer
		}
	}
	counts := make([]int, deepest+1)
	for _, e := range s.Entries {
		if e.Kind == KindNumeric && e.Layer >= 0 {
			counts[e.Layer]++
		}
	}
	return counts
}

// Labels returns the entry labels in emission order.
func (s Shape) Labels() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Label
	}
	return out
}

// Mean returns the arithmetic mean of the entry positions.
// The zero vector is returned for an empty shape.
func (s Shape) Mean() r3.Vec {
	if len(s.Entries) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, e := range s.Entries {
		sum = r3.Add(sum, e.Pos)
	}
	return r3.Scale(1/float64(len(s.Entries)), sum)
}

//-----------------------------------------------------------------------------
// Family
//-----------------------------------------------------------------------------

// Family enumerates the figurate solids (closed set).
type Family int

// Enum values (stable ordering).
const (
	FamilyTriangle      Family = iota // n(n+1)/2
	FamilySquarePyramid               // Σ(y+1)²
	FamilyOctahedron                  // 2·P(n) − n²
	FamilyOctahedronX                 // octahedron viewed down x
	FamilyOctahedronZ                 // octahedron viewed down z
	FamilyTetrahedron                 // n(n+1)(n+2)/6
)

// familyNames maps each Family to its configuration name.
var familyNames = map[Family]string{
	FamilyTriangle:      "triangle",
	FamilySquarePyramid: "pyramid",
	FamilyOctahedron:    "octahedron",
	FamilyOctahedronX:   "octahedronx",
	FamilyOctahedronZ:   "octahedronz",
	FamilyTetrahedron:   "tetrahedron",
}

// String provides the configuration name ("triangle", "pyramid", ...).
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFamily resolves a configuration name (case-insensitive).
func ParseFamily(name string) (Family, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for f := FamilyTriangle; f <= FamilyTetrahedron; f++ {
		if familyNames[f] == want {
			return f, nil
		}
	}
	return 0, fmt.Errorf("ParseFamily(%q): %w", name, ErrUnknownFamily)
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	if _, ok := familyNames[f]; !ok {
		return nil, fmt.Errorf("Family(%d): %w", int(f), ErrUnknownFamily)
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so catalog files can
// name families directly.
func (f *Family) UnmarshalText(b []byte) error {
	v, err := ParseFamily(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
