// SPDX-License-Identifier: MIT
// Package: latex3d/catalog
//
// item.go — one placeholder entry and its rendering.
//
// Leaf items: Family + N (+ To, Text, ToMulti, ToCenter, Glyph, RingGlyph,
// LabelNudge, Nudges, Replica) select the shape; Variant, Scale, FontScale,
// Unit and Style select the rendering. Zero values mean "package default".
// Composite items: Parts rendered independently, then composed with Shift
// (default render.DefaultShift); Style applies to the composed container.
// Parts must resolve to one unit.

package catalog

import (
	"fmt"
	"math"

	"github.com/aymerick/douceur/parser"

	"github.com/katalvlaran/latex3d/geom"
	"github.com/katalvlaran/latex3d/render"
	"github.com/katalvlaran/latex3d/shape"
)

// Item is one catalog entry.
type Item struct {
	Code string `yaml:"code,omitempty" toml:"code,omitempty"`

	Family   string `yaml:"family,omitempty" toml:"family,omitempty"`
	N        int    `yaml:"n,omitempty" toml:"n,omitempty"`
	To       string `yaml:"to,omitempty" toml:"to,omitempty"`
	Text     string `yaml:"text,omitempty" toml:"text,omitempty"`
	ToMulti  bool   `yaml:"to_multi,omitempty" toml:"to_multi,omitempty"`
	ToCenter bool   `yaml:"to_center,omitempty" toml:"to_center,omitempty"`
	Replica  *int   `yaml:"replica,omitempty" toml:"replica,omitempty"`

	Glyph      string   `yaml:"glyph,omitempty" toml:"glyph,omitempty"`
	RingGlyph  string   `yaml:"ring_glyph,omitempty" toml:"ring_glyph,omitempty"`
	LabelNudge *float64 `yaml:"label_nudge,omitempty" toml:"label_nudge,omitempty"`
	Nudges     []Nudge  `yaml:"nudges,omitempty" toml:"nudges,omitempty"`

	Variant   string  `yaml:"variant,omitempty" toml:"variant,omitempty"`
	Scale     float64 `yaml:"scale,omitempty" toml:"scale,omitempty"`
	FontScale float64 `yaml:"font_scale,omitempty" toml:"font_scale,omitempty"`
	Unit      string  `yaml:"unit,omitempty" toml:"unit,omitempty"`
	Style     string  `yaml:"style,omitempty" toml:"style,omitempty"`

	Parts []Item   `yaml:"parts,omitempty" toml:"parts,omitempty"`
	Shift *float64 `yaml:"shift,omitempty" toml:"shift,omitempty"`
}

// Nudge is a manual x offset, in lattice units, for every entry labelled
// Label.
type Nudge struct {
	Label string  `yaml:"label" toml:"label"`
	DX    float64 `yaml:"dx" toml:"dx"`
}

// Composite reports whether the item is assembled from parts.
func (it Item) Composite() bool { return len(it.Parts) > 0 }

// Describe returns a short human-readable summary ("tetrahedron n=3").
func (it Item) Describe() string {
	if it.Composite() {
		return fmt.Sprintf("composite of %d", len(it.Parts))
	}
	d := fmt.Sprintf("%s n=%d", it.Family, it.N)
	if it.To != "" {
		d += " to=" + it.To
	}
	if it.Replica != nil {
		d += fmt.Sprintf(" replica=%d", *it.Replica)
	}
	if it.Variant != "" {
		d += " " + it.Variant
	}
	return d
}

// Fragment renders the item against fr.
func (it Item) Fragment(fr geom.Frame) (render.Fragment, error) {
	if it.Composite() {
		return it.composite(fr)
	}

	fam, err := shape.ParseFamily(it.Family)
	if err != nil {
		return render.Fragment{}, err
	}
	gen, err := shape.ForFamily(fam, it.N)
	if err != nil {
		return render.Fragment{}, err
	}
	s, err := shape.Build(fr, gen, it.shapeOptions()...)
	if err != nil {
		return render.Fragment{}, err
	}
	if it.Replica != nil {
		s = shape.Replica(s, *it.Replica)
	}

	ropts, err := it.renderOptions()
	if err != nil {
		return render.Fragment{}, err
	}
	return render.Render(s, ropts...)
}

// composite renders the parts and composes them.
func (it Item) composite(fr geom.Frame) (render.Fragment, error) {
	frags := make([]render.Fragment, 0, len(it.Parts))
	for i, p := range it.Parts {
		f, err := p.Fragment(fr)
		if err != nil {
			return render.Fragment{}, fmt.Errorf("parts[%d]: %w", i, err)
		}
		frags = append(frags, f)
	}

	shift := render.DefaultShift
	if it.Shift != nil {
		shift = *it.Shift
	}
	out, err := render.Compose(shift, frags...)
	if err != nil {
		return render.Fragment{}, err
	}
	if it.Style != "" {
		out = out.WithStyle(it.Style)
	}
	return out, nil
}

// shapeOptions maps the shape settings onto shape options.
func (it Item) shapeOptions() []shape.Option {
	var opts []shape.Option
	if it.To != "" {
		opts = append(opts, shape.WithTo(it.To))
	}
	if it.Text != "" {
		opts = append(opts, shape.WithText(it.Text))
	}
	if it.ToMulti {
		opts = append(opts, shape.WithToMulti())
	}
	if it.ToCenter {
		opts = append(opts, shape.WithToCenter())
	}
	if it.Glyph != "" || it.RingGlyph != "" {
		dot, ring := shape.DefaultGlyph, shape.DefaultRingGlyph
		if it.Glyph != "" {
			dot = it.Glyph
		}
		if it.RingGlyph != "" {
			ring = it.RingGlyph
		}
		opts = append(opts, shape.WithGlyphs(dot, ring))
	}
	if it.LabelNudge != nil {
		opts = append(opts, shape.WithLabelNudge(*it.LabelNudge))
	}
	for _, n := range it.Nudges {
		opts = append(opts, shape.WithNudge(n.Label, n.DX))
	}
	return opts
}

// renderOptions maps the rendering settings onto render options.
func (it Item) renderOptions() ([]render.Option, error) {
	v, err := render.ParseVariant(it.Variant)
	if err != nil {
		return nil, err
	}
	opts := []render.Option{render.WithClass(v)}
	if it.Scale > 0 {
		opts = append(opts, render.WithScale(it.Scale))
	}
	if it.FontScale > 0 {
		opts = append(opts, render.WithFontScale(it.FontScale))
	}
	if it.Unit != "" {
		unit, err := render.ParseUnit(it.Unit)
		if err != nil {
			return nil, err
		}
		opts = append(opts, render.WithUnit(unit))
	}
	if it.Style != "" {
		opts = append(opts, render.WithStyle(it.Style))
	}
	return opts, nil
}

// validate checks every setting that would otherwise panic or fail while
// rendering. path names the item in error messages.
func (it Item) validate(path string) error {
	if it.Shift != nil && (math.IsNaN(*it.Shift) || math.IsInf(*it.Shift, 0)) {
		return fmt.Errorf("%s: shift must be finite: %w", path, ErrInvalidItem)
	}
	if err := validateStyle(it.Style); err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrInvalidItem, err)
	}
	if it.Composite() {
		var unit string
		for i, p := range it.Parts {
			ppath := fmt.Sprintf("%s/parts[%d]", path, i)
			if err := p.validate(ppath); err != nil {
				return err
			}
			u := p.resolvedUnit()
			if i == 0 {
				unit = u
			} else if u != unit {
				return fmt.Errorf("%s: unit %q, want %q: %w: %w", ppath, u, unit, ErrInvalidItem, render.ErrUnitMismatch)
			}
		}
		return nil
	}

	if _, err := shape.ParseFamily(it.Family); err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrInvalidItem, err)
	}
	if it.N < shape.MinLayers {
		return fmt.Errorf("%s: n must be ≥ %d, got %d: %w", path, shape.MinLayers, it.N, ErrInvalidItem)
	}
	if it.Replica != nil && (*it.Replica < 0 || *it.Replica >= shape.ReplicaCount) {
		return fmt.Errorf("%s: replica must be in [0,%d), got %d: %w", path, shape.ReplicaCount, *it.Replica, ErrInvalidItem)
	}
	if _, err := render.ParseVariant(it.Variant); err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrInvalidItem, err)
	}
	if !finiteNonNegative(it.Scale) || !finiteNonNegative(it.FontScale) {
		return fmt.Errorf("%s: scale and font_scale must be ≥ 0: %w", path, ErrInvalidItem)
	}
	if _, err := render.ParseUnit(it.Unit); err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrInvalidItem, err)
	}
	if it.LabelNudge != nil && !finiteNonNegative(*it.LabelNudge) {
		return fmt.Errorf("%s: label_nudge must be ≥ 0: %w", path, ErrInvalidItem)
	}
	for i, n := range it.Nudges {
		if n.Label == "" || math.IsNaN(n.DX) || math.IsInf(n.DX, 0) {
			return fmt.Errorf("%s: nudges[%d] needs a label and a finite dx: %w", path, i, ErrInvalidItem)
		}
	}
	return nil
}

// resolvedUnit is the unit the item renders in. Composites take the unit of
// their first part; validate checks that the rest agree.
func (it Item) resolvedUnit() string {
	if it.Composite() {
		return it.Parts[0].resolvedUnit()
	}
	u, _ := render.ParseUnit(it.Unit)
	return u
}

// finiteNonNegative reports whether v is a usable optional scale (0 = unset).
func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// validateStyle checks that a non-empty style is a list of CSS declarations.
func validateStyle(style string) error {
	if style == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return fmt.Errorf("style %q: %w", style, err)
	}
	if len(decls) == 0 {
		return fmt.Errorf("style %q: no declarations", style)
	}
	return nil
}
