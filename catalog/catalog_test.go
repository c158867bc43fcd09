package catalog_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latex3d/catalog"
	"github.com/katalvlaran/latex3d/geom"
	"github.com/katalvlaran/latex3d/render"
	"github.com/katalvlaran/latex3d/shape"
)

var frame = geom.NewFrame()

// TestDefault_ValidAndRenderable renders every built-in item.
func TestDefault_ValidAndRenderable(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	require.NoError(t, c.Validate())
	require.Equal(t, "1222201", c.Codes()[0])

	frags, err := c.Fragments(frame)
	require.NoError(t, err)
	require.Len(t, frags, len(c.Items))
	for code, html := range frags {
		assert.True(t, strings.HasPrefix(html, "<div"), code)
		assert.Contains(t, html, `class="latex3d`, code)
	}

	// the octahedron composite keeps its three views 15 apart, inside the box
	comp := frags["12222105"]
	for _, want := range []string{
		`class="latex3d magenta"`, `class="latex3d orange"`, `class="latex3d tan"`,
		`left:0px;`, `left:15px;`, `left:30px;`, `position:relative;`,
	} {
		assert.Contains(t, comp, want)
	}
	assert.NotContains(t, comp, `left:-`)
	assert.Equal(t, 3, strings.Count(frags["122204"], "position:absolute;left:0px;"))
}

// TestDefault_Fresh checks that callers cannot alter later results.
func TestDefault_Fresh(t *testing.T) {
	t.Parallel()

	a := catalog.Default()
	a.Items[0].N = 99
	*a.Items[9].Shift = 7
	b := catalog.Default()
	require.Equal(t, 3, b.Items[0].N)
	require.Equal(t, 0.0, *b.Items[9].Shift)
}

// TestLookup covers hits and misses.
func TestLookup(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	it, err := c.Lookup("122201")
	require.NoError(t, err)
	require.Equal(t, "tetrahedron", it.Family)
	require.Equal(t, "tetrahedron n=3", it.Describe())

	_, err = c.Lookup("999")
	require.ErrorIs(t, err, catalog.ErrUnknownCode)
}

// TestItem_Fragment checks a leaf item against a direct render.
func TestItem_Fragment(t *testing.T) {
	t.Parallel()

	it := catalog.Item{Code: "1", Family: "tetrahedron", N: 2, To: "n", Variant: "teal", Scale: 40, FontScale: 2, Style: "margin:0"}
	got, err := it.Fragment(frame)
	require.NoError(t, err)

	s, err := shape.Build(frame, shape.Tetrahedron(2), shape.WithTo("n"))
	require.NoError(t, err)
	want, err := render.Render(s,
		render.WithClass(render.VariantTeal),
		render.WithScale(40),
		render.WithFontScale(2),
		render.WithStyle("margin:0"),
	)
	require.NoError(t, err)
	require.Equal(t, want.HTML(), got.HTML())
}

// TestItem_ShapeAndUnitKeys checks that glyph, nudge and unit settings reach
// the shape and render options.
func TestItem_ShapeAndUnitKeys(t *testing.T) {
	t.Parallel()

	zero := 0.0
	it := catalog.Item{
		Code:       "1",
		Family:     "triangle",
		N:          10,
		To:         "n",
		Glyph:      "∘",
		LabelNudge: &zero,
		Nudges:     []catalog.Nudge{{Label: "1", DX: 0.25}, {Label: "1", DX: 0.25}},
		Scale:      2,
		Unit:       "em",
	}
	require.NoError(t, catalog.Catalog{Items: []catalog.Item{it}}.Validate())
	got, err := it.Fragment(frame)
	require.NoError(t, err)
	require.Equal(t, render.UnitEm, got.Unit)

	s, err := shape.Build(frame, shape.Triangle(10),
		shape.WithTo("n"),
		shape.WithGlyphs("∘", shape.DefaultRingGlyph),
		shape.WithLabelNudge(0),
		shape.WithNudge("1", 0.25),
		shape.WithNudge("1", 0.25),
	)
	require.NoError(t, err)
	want, err := render.Render(s, render.WithScale(2), render.WithUnit(render.UnitEm))
	require.NoError(t, err)
	require.Equal(t, want.HTML(), got.HTML())
	require.Contains(t, got.HTML(), "<div>∘</div>")
	require.NotContains(t, got.HTML(), "px")

	// the keys read back from a catalog file
	src := `
items:
  - code: "1"
    family: triangle
    n: 10
    to: n
    glyph: "∘"
    label_nudge: 0
    nudges:
      - {label: "1", dx: 0.25}
      - {label: "1", dx: 0.25}
    scale: 2
    unit: em
`
	c, err := catalog.Parse([]byte(src), catalog.FormatYAML)
	require.NoError(t, err)
	require.Equal(t, []catalog.Item{it}, c.Items)
}

// TestValidate_Style accepts declaration lists on leaves and composites.
func TestValidate_Style(t *testing.T) {
	t.Parallel()

	c := catalog.Catalog{Items: []catalog.Item{
		{Code: "1", Family: "triangle", N: 2, Style: "margin:auto;color:red"},
		{Code: "2", Style: "top:-1em", Parts: []catalog.Item{{Family: "pyramid", N: 2}}},
	}}
	require.NoError(t, c.Validate())
}

// TestValidate_Errors table-drives the validation failures.
func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	three := 3
	minus := -0.5
	nan := 0.0
	nan = nan / nan
	tests := []struct {
		name  string
		items []catalog.Item
		is    []error
		msg   string
	}{
		{"empty code", []catalog.Item{{Family: "triangle", N: 1}}, []error{catalog.ErrBadCode}, "items[0]"},
		{"letters", []catalog.Item{{Code: "12a", Family: "triangle", N: 1}}, []error{catalog.ErrBadCode}, `"12a"`},
		{"duplicate", []catalog.Item{
			{Code: "11", Family: "triangle", N: 1},
			{Code: "11", Family: "pyramid", N: 1},
		}, []error{catalog.ErrDuplicateCode}, "items[1]"},
		{"family", []catalog.Item{{Code: "1", Family: "cube", N: 1}}, []error{catalog.ErrInvalidItem, shape.ErrUnknownFamily}, "1:"},
		{"layers", []catalog.Item{{Code: "1", Family: "triangle"}}, []error{catalog.ErrInvalidItem}, "n must be"},
		{"replica", []catalog.Item{{Code: "1", Family: "triangle", N: 2, Replica: &three}}, []error{catalog.ErrInvalidItem}, "replica"},
		{"variant", []catalog.Item{{Code: "1", Family: "triangle", N: 2, Variant: "purple"}}, []error{catalog.ErrInvalidItem, render.ErrUnknownVariant}, "purple"},
		{"style", []catalog.Item{{Code: "1", Family: "triangle", N: 2, Style: "  "}}, []error{catalog.ErrInvalidItem}, "style"},
		{"scale", []catalog.Item{{Code: "1", Family: "triangle", N: 2, Scale: -1}}, []error{catalog.ErrInvalidItem}, "scale"},
		{"unit", []catalog.Item{{Code: "1", Family: "triangle", N: 2, Unit: "pt"}}, []error{catalog.ErrInvalidItem, render.ErrUnknownUnit}, "pt"},
		{"label nudge", []catalog.Item{{Code: "1", Family: "triangle", N: 2, LabelNudge: &minus}}, []error{catalog.ErrInvalidItem}, "label_nudge"},
		{"nudge label", []catalog.Item{{Code: "1", Family: "triangle", N: 2, Nudges: []catalog.Nudge{{DX: 1}}}}, []error{catalog.ErrInvalidItem}, "nudges[0]"},
		{"nudge dx", []catalog.Item{{Code: "1", Family: "triangle", N: 2, Nudges: []catalog.Nudge{{Label: "2", DX: nan}}}}, []error{catalog.ErrInvalidItem}, "nudges[0]"},
		{"mixed units", []catalog.Item{{Code: "1", Parts: []catalog.Item{
			{Family: "triangle", N: 1},
			{Family: "triangle", N: 1, Unit: "em"},
		}}}, []error{catalog.ErrInvalidItem, render.ErrUnitMismatch}, "1/parts[1]"},
		{"shift", []catalog.Item{{Code: "1", Shift: &nan, Parts: []catalog.Item{{Family: "triangle", N: 1}}}}, []error{catalog.ErrInvalidItem}, "shift"},
		{"nested", []catalog.Item{{Code: "7", Parts: []catalog.Item{
			{Family: "triangle", N: 1},
			{Family: "triangle", N: 0},
		}}}, []error{catalog.ErrInvalidItem}, "7/parts[1]"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := catalog.Catalog{Items: tc.items}.Validate()
			require.Error(t, err)
			for _, target := range tc.is {
				require.True(t, errors.Is(err, target), "%v is not %v", err, target)
			}
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}
