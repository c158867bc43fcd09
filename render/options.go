// SPDX-License-Identifier: MIT
// Package: latex3d/render
//
// options.go — functional options for Render.
//
// Contract:
//   • Option constructors PANIC on meaningless values; Render never panics.
//   • Options apply in order; later ones override earlier ones, except
//     WithStyle which appends.

package render

import "math"

// Option customizes a single Render call.
type Option func(*renderConfig)

// renderConfig holds the resolved rendering parameters.
type renderConfig struct {
	scale     float64 // k: units per lattice step
	fontScale float64 // emitted as font-size when ≠ 1; divides k for em only
	unit      string
	variant   Variant
	style     string // extra container declarations
}

// newRenderConfig returns the defaults with opts applied.
func newRenderConfig(opts ...Option) renderConfig {
	cfg := renderConfig{
		scale:     DefaultScale,
		fontScale: DefaultFontScale,
		unit:      DefaultUnit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// geometryScale is the effective spacing g. Em lengths already grow with the
// container font size, so only they are divided by fontScale; px and rem
// lengths ignore it.
func (c renderConfig) geometryScale() float64 {
	if c.unit == UnitEm {
		return c.scale / c.fontScale
	}
	return c.scale
}

// WithScale sets the geometry scale k. Panics unless k is finite and > 0.
func WithScale(k float64) Option {
	if !(k > 0) || math.IsInf(k, 0) {
		panic("render: WithScale(k<=0)")
	}
	return func(c *renderConfig) {
		c.scale = k
	}
}

// WithFontScale sets a font-size factor for the container. Spacing is kept
// constant: with UnitEm f is divided out of the geometry scale, with px and
// rem the lengths are already independent of the font size.
// Panics unless f is finite and > 0.
func WithFontScale(f float64) Option {
	if !(f > 0) || math.IsInf(f, 0) {
		panic("render: WithFontScale(f<=0)")
	}
	return func(c *renderConfig) {
		c.fontScale = f
	}
}

// WithUnit selects the CSS length unit ("px", "em" or "rem").
func WithUnit(unit string) Option {
	if !units[unit] {
		panic("render: WithUnit(" + unit + ")")
	}
	return func(c *renderConfig) {
		c.unit = unit
	}
}

// WithClass selects a color variant. Panics on an unknown variant.
func WithClass(v Variant) Option {
	if !v.Valid() {
		panic("render: WithClass(" + string(v) + ")")
	}
	return func(c *renderConfig) {
		c.variant = v
	}
}

// WithStyle appends CSS declarations to the container style.
// Panics on an empty string.
func WithStyle(css string) Option {
	if css == "" {
		panic("render: WithStyle(\"\")")
	}
	return func(c *renderConfig) {
		c.style = joinStyle(c.style, css)
	}
}
