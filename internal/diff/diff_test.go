package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sketchsync/engine/internal/logging"
	"github.com/sketchsync/engine/internal/override"
	"github.com/sketchsync/engine/internal/render"
)

const pageHTML = `
<html>
<body>
	<div id="root">
		<h1 id="title">Hello</h1>
		<p class="note">note text</p>
	</div>
</body>
</html>
`

func strPtr(s string) *string { return &s }

func newEngine() *Engine {
	return NewEngine(logging.Nop(), nil)
}

func TestApplyTextAndStyles(t *testing.T) {
	out, err := newEngine().ApplyToHTML(pageHTML, []override.ElementOverride{
		{
			Selector:   "#title",
			Text:       strPtr("Patched"),
			Styles:     map[string]string{"color": "red"},
			Attributes: map[string]string{"data-ai": "1"},
			Timestamp:  1,
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Patched")
	assert.Contains(t, out, "color: red")
	assert.Contains(t, out, `data-ai="1"`)
	assert.NotContains(t, out, "Hello")
}

func TestHTMLSupersedesText(t *testing.T) {
	out, err := newEngine().ApplyToHTML(pageHTML, []override.ElementOverride{
		{
			Selector:  "#title",
			Text:      strPtr("text write"),
			HTML:      strPtr("<em>subtree</em>"),
			Timestamp: 1,
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "<em>subtree</em>")
	assert.NotContains(t, out, "text write")
}

func TestMissingSelectorSkipsWithoutAborting(t *testing.T) {
	engine := newEngine()
	target, err := render.NewDocumentTargetFromHTML(pageHTML)
	require.NoError(t, err)

	applied := engine.Apply(target, []override.ElementOverride{
		{Selector: "#ghost", Text: strPtr("dropped"), Timestamp: 1},
		{Selector: "#title", Text: strPtr("landed"), Timestamp: 2},
	})
	assert.Equal(t, 1, applied)

	out, err := target.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, "landed")
	assert.NotContains(t, out, "dropped")
}

func TestGeometryOnlyOverridesIgnored(t *testing.T) {
	engine := newEngine()
	target, err := render.NewDocumentTargetFromHTML(pageHTML)
	require.NoError(t, err)

	before, err := target.HTML()
	require.NoError(t, err)

	applied := engine.Apply(target, []override.ElementOverride{
		{
			Selector:  "#title",
			Position:  &override.Position{X: 5, Y: 5},
			Size:      &override.Size{Width: 10, Height: 10},
			Timestamp: 1,
		},
	})
	assert.Zero(t, applied)

	after, err := target.HTML()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestApplyIsIdempotent(t *testing.T) {
	engine := newEngine()
	overrides := []override.ElementOverride{
		{
			Selector:  "#title",
			Text:      strPtr("stable"),
			Styles:    map[string]string{"color": "green"},
			Timestamp: 1,
		},
		{
			Selector:  ".note",
			HTML:      strPtr("<i>fixed</i>"),
			Timestamp: 2,
		},
	}

	once, err := engine.ApplyToHTML(pageHTML, overrides)
	require.NoError(t, err)
	twice, err := engine.ApplyToHTML(once, overrides)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestSanitizerStripsScripts(t *testing.T) {
	engine := newEngine()
	engine.EnableSanitizer()

	out, err := engine.ApplyToHTML(pageHTML, []override.ElementOverride{
		{
			Selector:  "#root",
			HTML:      strPtr(`<b>safe</b><script>alert(1)</script>`),
			Timestamp: 1,
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "<b>safe</b>")
	assert.NotContains(t, out, "alert(1)")
}

func TestApplyOnMemoryTarget(t *testing.T) {
	engine := newEngine()
	target := render.NewMemoryTarget()
	target.Register("#title")

	applied := engine.Apply(target, []override.ElementOverride{
		{Selector: "#title", Text: strPtr("headless"), Timestamp: 1},
	})
	assert.Equal(t, 1, applied)

	el, ok := target.Element("#title")
	require.True(t, ok)
	assert.Equal(t, "headless", el.Text)
}
