// SPDX-License-Identifier: MIT
// Package: latex3d/render
//
// render.go — Render(shape): bounding box and per-entry markup.
//
// Algorithm:
//   1) W = 1 + 2·max √(x²+z²), H = max y (− FlatHeightTrim if flat, ≥ 0).
//   2) g = scale / fontScale for em, g = scale for px and rem.
//   3) Entry → translate3d(g·(x + W/2), g·y, g·z) [custom], then the entry
//      style; the label sits in an inner wrapper unless a custom transform
//      is present.
//
// Complexity: O(len(entries)).

package render

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/net/html"

	"github.com/katalvlaran/latex3d/geom"
	"github.com/katalvlaran/latex3d/shape"
)

// Bounds returns the shape's bounding width and height in lattice units.
func Bounds(s shape.Shape) (width, height float64, err error) {
	if len(s.Entries) == 0 {
		return 0, 0, fmt.Errorf("Bounds(%s): %w", s.Family, ErrEmptyShape)
	}
	radius := 0.0
	height = math.Inf(-1)
	for _, e := range s.Entries {
		radius = math.Max(radius, math.Hypot(e.Pos.X, e.Pos.Z))
		height = math.Max(height, e.Pos.Y)
	}
	if s.Flat {
		height -= FlatHeightTrim
	}
	return 1 + 2*radius, math.Max(height, 0), nil
}

// Render lays out every entry of s inside one container element.
// Returns ErrEmptyShape for a shape without entries.
func Render(s shape.Shape, opts ...Option) (Fragment, error) {
	w, h, err := Bounds(s)
	if err != nil {
		return Fragment{}, fmt.Errorf("Render: %w", err)
	}

	cfg := newRenderConfig(opts...)
	g := cfg.geometryScale()

	var fontSize string
	if cfg.fontScale != DefaultFontScale {
		fontSize = "font-size:" + geom.Format(cfg.fontScale) + "em"
	}

	frag := Fragment{Width: g * w, Height: g * h, Unit: cfg.unit}
	frag.Node = div(cfg.variant.class(), joinStyle(
		"width:"+length(frag.Width, cfg.unit),
		"height:"+length(frag.Height, cfg.unit),
		fontSize,
		cfg.style,
	))

	for _, e := range s.Entries {
		frag.Node.AppendChild(entryNode(e, g, w/2, cfg.unit))
	}
	return frag, nil
}

// entryNode renders one positioned entry.
func entryNode(e shape.Entry, g, dx float64, unit string) *html.Node {
	var tf strings.Builder
	tf.WriteString("transform:translate3d(")
	tf.WriteString(length(g*(e.Pos.X+dx), unit))
	tf.WriteByte(',')
	tf.WriteString(length(g*e.Pos.Y, unit))
	tf.WriteByte(',')
	tf.WriteString(length(g*e.Pos.Z, unit))
	tf.WriteByte(')')
	if e.Transform != "" {
		tf.WriteByte(' ')
		tf.WriteString(e.Transform)
	}

	n := div("", joinStyle(tf.String(), e.Style))
	if e.Transform != "" {
		n.AppendChild(text(e.Label))
		return n
	}
	// counter-rotation wrapper
	inner := div("", "")
	inner.AppendChild(text(e.Label))
	n.AppendChild(inner)
	return n
}
