package render_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/katalvlaran/latex3d/geom"
	"github.com/katalvlaran/latex3d/render"
	"github.com/katalvlaran/latex3d/shape"
)

var frame = geom.NewFrame()

func mustShape(t *testing.T, gen shape.Generator, opts ...shape.Option) shape.Shape {
	t.Helper()
	s, err := shape.Build(frame, gen, opts...)
	require.NoError(t, err)
	return s
}

func mustRender(t *testing.T, s shape.Shape, opts ...render.Option) render.Fragment {
	t.Helper()
	f, err := render.Render(s, opts...)
	require.NoError(t, err)
	return f
}

// entryLabels collects the text of every entry element in order.
func entryLabels(n *html.Node) []string {
	var out []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		t := c.FirstChild
		if t.Type == html.ElementNode {
			t = t.FirstChild
		}
		out = append(out, t.Data)
	}
	return out
}

// entryTransforms collects the style attribute of every entry element.
func entryTransforms(n *html.Node) []string {
	var out []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		for _, a := range c.Attr {
			if a.Key == "style" {
				out = append(out, a.Val)
			}
		}
	}
	return out
}

// TestRender_SinglePoint pins the exact markup of the smallest shape.
func TestRender_SinglePoint(t *testing.T) {
	t.Parallel()

	f := mustRender(t, mustShape(t, shape.Triangle(1)))
	require.Equal(t,
		`<div class="latex3d" style="width:30px;height:0px;">`+
			`<div style="transform:translate3d(15px,0px,0px);"><div>1</div></div>`+
			`</div>`,
		f.HTML())
	require.Equal(t, 30.0, f.Width)
	require.Equal(t, 0.0, f.Height)
	require.Equal(t, render.UnitPx, f.Unit)
	require.Equal(t, f.HTML(), f.String())
}

// TestRender_Options checks variant class, font scale and extra style.
func TestRender_Options(t *testing.T) {
	t.Parallel()

	f := mustRender(t, mustShape(t, shape.Tetrahedron(1)),
		render.WithClass(render.VariantTeal),
		render.WithFontScale(2),
		render.WithStyle("margin:auto"),
	)
	require.Equal(t,
		`<div class="latex3d teal" style="width:30px;height:0px;font-size:2em;margin:auto;">`+
			`<div style="transform:translate3d(15px,0px,0px);"><div>1</div></div>`+
			`</div>`,
		f.HTML())

	em := mustRender(t, mustShape(t, shape.Tetrahedron(1)), render.WithScale(1.5), render.WithUnit(render.UnitEm))
	require.True(t, strings.HasPrefix(em.HTML(), `<div class="latex3d" style="width:1.5em;height:0em;">`), em.HTML())
}

// TestRender_FontScaleSpacing checks that the font scale never changes the
// rendered spacing: px and rem lengths are left alone, em lengths are divided
// by the font scale to cancel the larger container font.
func TestRender_FontScaleSpacing(t *testing.T) {
	t.Parallel()

	s := mustShape(t, shape.Triangle(2))
	for _, unit := range []string{render.UnitPx, render.UnitRem} {
		plain := mustRender(t, s, render.WithUnit(unit))
		big := mustRender(t, s, render.WithUnit(unit), render.WithFontScale(2))
		require.Equal(t, plain.Width, big.Width, unit)
		require.Equal(t, plain.Height, big.Height, unit)
		require.Equal(t, entryTransforms(plain.Node), entryTransforms(big.Node), unit)
	}
	px := mustRender(t, s, render.WithFontScale(2)).HTML()
	require.Contains(t, px, `width:64.641px;height:15px;font-size:2em;`)
	require.Contains(t, px, `translate3d(49.641px,30px,0px)`)

	em := mustRender(t, mustShape(t, shape.Tetrahedron(1)),
		render.WithScale(2), render.WithUnit(render.UnitEm), render.WithFontScale(2))
	require.InDelta(t, 1.0, em.Width, 1e-9)
	require.Equal(t,
		`<div class="latex3d" style="width:1em;height:0em;font-size:2em;">`+
			`<div style="transform:translate3d(0.5em,0em,0em);"><div>1</div></div>`+
			`</div>`,
		em.HTML())
}

// TestRender_TriangleEndToEnd covers entry count, order and bounding width.
func TestRender_TriangleEndToEnd(t *testing.T) {
	t.Parallel()

	s := mustShape(t, shape.Triangle(4))
	f := mustRender(t, s)

	require.Equal(t, []string{"1", "2", "2", "3", "3", "3", "4", "4", "4", "4"}, entryLabels(f.Node))

	// widest row y = 3 reaches x = ±√3
	w, h, err := render.Bounds(s)
	require.NoError(t, err)
	require.InDelta(t, 1+2*math.Sqrt(3), w, 1e-9)
	require.InDelta(t, 3-render.FlatHeightTrim, h, 1e-9)
	require.InDelta(t, render.DefaultScale*w, f.Width, 1e-9)
	require.Contains(t, f.HTML(), `width:133.923px;height:75px;`)
}

// TestBounds_Pyramid checks the diamond radius and the unflattened height.
func TestBounds_Pyramid(t *testing.T) {
	t.Parallel()

	w, h, err := render.Bounds(mustShape(t, shape.SquarePyramid(3)))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, w, 1e-9)
	assert.InDelta(t, 2.0, h, 1e-9)
}

// TestRender_OrientedAndStyledEntries checks the wrapper rules.
func TestRender_OrientedAndStyledEntries(t *testing.T) {
	t.Parallel()

	s := mustShape(t, shape.Tetrahedron(2), shape.WithTo("n"), shape.WithToMulti())
	out := mustRender(t, s).HTML()

	// oriented glyphs: custom transform appended, no wrapper
	require.Contains(t, out, ` rotateY(-0.333turn);">⋯</div>`)
	require.Contains(t, out, ` rotateY(0.333turn);">⋯</div>`)
	// dot runs and labels keep the counter-rotation wrapper
	require.Contains(t, out, `);"><div>·</div></div>`)
	require.Contains(t, out, `);font-size:70%;"><div>n−1</div></div>`)
	require.NotContains(t, out, `<div>⋯</div>`)
}

// TestRender_Deterministic verifies byte-identical output.
func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	mk := func() string {
		s := mustShape(t, shape.Tetrahedron(3), shape.WithTo("n"), shape.WithToCenter())
		r := shape.Replica(s, 2)
		return mustRender(t, r, render.WithClass(render.VariantOrange)).HTML()
	}
	require.Equal(t, mk(), mk())
}

// TestRender_Errors checks the empty-shape sentinel.
func TestRender_Errors(t *testing.T) {
	t.Parallel()

	_, err := render.Render(shape.Shape{})
	require.ErrorIs(t, err, render.ErrEmptyShape)
	_, _, err = render.Bounds(shape.Shape{})
	require.ErrorIs(t, err, render.ErrEmptyShape)
}

// TestOptions_Panics checks option validation.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { render.WithScale(0) })
	require.Panics(t, func() { render.WithScale(math.Inf(1)) })
	require.Panics(t, func() { render.WithScale(math.NaN()) })
	require.Panics(t, func() { render.WithFontScale(-1) })
	require.Panics(t, func() { render.WithUnit("pt") })
	require.Panics(t, func() { render.WithClass("purple") })
	require.Panics(t, func() { render.WithStyle("") })
}

// TestParseVariant covers names, aliases and the error path.
func TestParseVariant(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]render.Variant{
		"":        render.VariantDefault,
		"default": render.VariantDefault,
		"Magenta": render.VariantMagenta,
		" tan ":   render.VariantTan,
	} {
		got, err := render.ParseVariant(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := render.ParseVariant("purple")
	require.ErrorIs(t, err, render.ErrUnknownVariant)

	var v render.Variant
	require.NoError(t, v.UnmarshalText([]byte("orange")))
	require.Equal(t, render.VariantOrange, v)
}

// TestParseUnit covers the default, the accepted units and the error path.
func TestParseUnit(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"":    render.DefaultUnit,
		"px":  render.UnitPx,
		"em":  render.UnitEm,
		"rem": render.UnitRem,
	} {
		got, err := render.ParseUnit(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := render.ParseUnit("pt")
	require.ErrorIs(t, err, render.ErrUnknownUnit)
}
