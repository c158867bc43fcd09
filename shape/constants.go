// Package shape defines shared constants used by the generators, keeping
// method tags, glyphs and correction factors in one place.
package shape

import (
	"math"

	"github.com/katalvlaran/latex3d/geom"
)

//-----------------------------------------------------------------------------
// Generator Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodTriangle is the canonical name for the Triangle generator.
	MethodTriangle = "Triangle"
	// MethodSquarePyramid is the canonical name for the SquarePyramid generator.
	MethodSquarePyramid = "SquarePyramid"
	// MethodOctahedron is the canonical name for the Octahedron generator.
	MethodOctahedron = "Octahedron"
	// MethodOctahedronX is the canonical name for the OctahedronX generator.
	MethodOctahedronX = "OctahedronX"
	// MethodOctahedronZ is the canonical name for the OctahedronZ generator.
	MethodOctahedronZ = "OctahedronZ"
	// MethodTetrahedron is the canonical name for the Tetrahedron generator.
	MethodTetrahedron = "Tetrahedron"
)

// MinLayers is the smallest layer count any generator accepts.
// A single layer is one point (or one row of one point).
const MinLayers = 1

//-----------------------------------------------------------------------------
// Continuation glyphs and labels
//-----------------------------------------------------------------------------

// DefaultGlyph marks the interpolated points of a continuation run; three of
// them bunched mid-edge read as an ellipsis along the edge.
const DefaultGlyph = "·"

// DefaultRingGlyph is the oriented glyph laid along the edges of an outer
// symbolic ring.
const DefaultRingGlyph = "⋯"

// PredecessorSuffix is appended to the continuation label on the inner ring
// when two symbolic rings are shown ("n" → "n−1").
const PredecessorSuffix = "−1"

// ContinuationStyle shrinks continuation labels longer than one grapheme.
const ContinuationStyle = "font-size:70%"

//-----------------------------------------------------------------------------
// Geometry
//-----------------------------------------------------------------------------

// TriangleRatio is the height-to-side ratio of an equilateral triangle.
var TriangleRatio = math.Sqrt(3) / 2

// triangleSpacing turns unit layer steps into equilateral spacing.
var triangleSpacing = 1 / TriangleRatio

// DefaultLabelNudge is the horizontal correction per extra grapheme applied
// to numeric labels of flat shapes.
const DefaultLabelNudge = 0.15

// Alignment angles used by Replica (rotation about x through the centroid).
var (
	// tetrahedronAlign brings the front base vertex to the top.
	tetrahedronAlign = geom.TetrahedralAngle
	// triangleAlign leans a flat triangle back like a tetrahedral face.
	triangleAlign = geom.TetrahedralAngle - geom.Tau/4
)
