// SPDX-License-Identifier: MIT
// Package: latex3d/shape
//
// options.go — functional options (ShapeParameters) for the generators.
//
// Contract:
//   • Options are functional (type Option func(*shapeConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic.
//   • WithToMulti/WithToCenter only take effect together with WithTo.

package shape

// Option customizes generation by mutating a shapeConfig before the
// generator runs.
type Option func(*shapeConfig)

// WithTo enables the symbolic continuation layer labelled label (e.g. "n").
// Panics on an empty label.
func WithTo(label string) Option {
	if label == "" {
		panic("shape: WithTo(\"\")")
	}
	return func(c *shapeConfig) {
		c.to = label
	}
}

// WithText replaces every numeric label with text. Panics on empty text.
func WithText(text string) Option {
	if text == "" {
		panic("shape: WithText(\"\")")
	}
	return func(c *shapeConfig) {
		c.text = text
	}
}

// WithToMulti shows two trailing symbolic rings ("to−1" and "to").
func WithToMulti() Option {
	return func(c *shapeConfig) {
		c.toMulti = true
	}
}

// WithToCenter adds a continuation run and terminal on the central axis
// (Tetrahedron only).
func WithToCenter() Option {
	return func(c *shapeConfig) {
		c.toCenter = true
	}
}

// WithGlyphs overrides the run glyph and the oriented ring glyph.
// Panics if either is empty.
func WithGlyphs(dot, ring string) Option {
	if dot == "" || ring == "" {
		panic("shape: WithGlyphs(empty)")
	}
	return func(c *shapeConfig) {
		c.glyph, c.ringGlyph = dot, ring
	}
}

// WithLabelNudge sets the per-extra-grapheme x correction applied to
// numeric labels of flat shapes. Panics if perGrapheme < 0; 0 disables it.
func WithLabelNudge(perGrapheme float64) Option {
	if perGrapheme < 0 {
		panic("shape: WithLabelNudge(perGrapheme<0)")
	}
	return func(c *shapeConfig) {
		c.labelNudge = perGrapheme
	}
}

// WithNudge shifts every entry labelled label by dx along x after
// generation. Repeated options for the same label accumulate.
// Panics on an empty label.
func WithNudge(label string, dx float64) Option {
	if label == "" {
		panic("shape: WithNudge(\"\")")
	}
	return func(c *shapeConfig) {
		c.nudges = append(c.nudges, labelOffset{label: label, dx: dx})
	}
}
