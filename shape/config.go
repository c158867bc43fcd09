// SPDX-License-Identifier: MIT
// Package: latex3d/shape
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • shapeConfig is the single source of truth for the ShapeParameters
//     beyond the layer count.
//   • Defaults are deterministic and documented; no globals.
//   • newShapeConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • to          = ""        (no continuation layer)
//   • text        = ""        (numeric labels "1","2",...)
//   • toMulti     = false     (one symbolic ring)
//   • toCenter    = false     (corner runs only)
//   • glyph       = "·"       ringGlyph = "⋯"
//   • labelNudge  = 0.15      (flat shapes, per extra grapheme)
//   • nudges      = none

package shape

import (
	"strconv"

	"github.com/rivo/uniseg"
)

// labelOffset is a manual x correction for every entry carrying label.
type labelOffset struct {
	label string
	dx    float64
}

// shapeConfig aggregates the optional generation parameters.
// It is passed by VALUE to generators.
type shapeConfig struct {
	to       string // continuation label; empty disables continuation
	text     string // literal label overriding numeric labels
	toMulti  bool   // two symbolic rings instead of one
	toCenter bool   // extra run + terminal on the center axis

	glyph     string // dot glyph for continuation runs
	ringGlyph string // oriented glyph along outer ring edges

	labelNudge float64       // flat shapes: x −= labelNudge·(graphemes−1)
	nudges     []labelOffset // applied in option order
}

// newShapeConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newShapeConfig(opts ...Option) shapeConfig {
	cfg := shapeConfig{
		glyph:      DefaultGlyph,
		ringGlyph:  DefaultRingGlyph,
		labelNudge: DefaultLabelNudge,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// continues reports whether a symbolic continuation layer is requested.
func (c shapeConfig) continues() bool { return c.to != "" }

// numericLabel returns the label of numeric layer k (0-indexed).
func (c shapeConfig) numericLabel(k int) string {
	if c.text != "" {
		return c.text
	}
	return strconv.Itoa(k + 1)
}

// ringLabels returns the labels of the first and (optional) second symbolic
// ring. With a single ring the second label is empty.
func (c shapeConfig) ringLabels() (inner, outer string) {
	if c.toMulti {
		return c.to + PredecessorSuffix, c.to
	}
	return c.to, ""
}

// terminal builds a continuation-label entry, shrinking multi-grapheme labels.
func terminal(label string, layer int) Entry {
	e := Entry{Label: label, Layer: layer, Kind: KindTerminal}
	if uniseg.GraphemeClusterCount(label) > 1 {
		e.Style = ContinuationStyle
	}
	return e
}
