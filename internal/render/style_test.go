package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpsertStyle(t *testing.T) {
	assert.Equal(t, "color: red", UpsertStyle("", "color", "red"))
	assert.Equal(t, "color: blue", UpsertStyle("color: red", "color", "blue"))
	assert.Equal(t, "color: red; font-size: 12px", UpsertStyle("color: red", "font-size", "12px"))
	// Existing declarations keep their order.
	assert.Equal(t, "a: 1; b: 2; c: 3", UpsertStyle("a: 1; b: 2", "c", "3"))
	assert.Equal(t, "a: 9; b: 2", UpsertStyle("a: 1; b: 2", "a", "9"))
}

func TestStyleValue(t *testing.T) {
	v, ok := StyleValue("color: red; left: 10px", "left")
	assert.True(t, ok)
	assert.Equal(t, "10px", v)

	_, ok = StyleValue("color: red", "top")
	assert.False(t, ok)
}

func TestGeometryStyleRoundTrip(t *testing.T) {
	g := Geometry{X: 12, Y: 34.5, Width: 300, Height: 150}
	style := geometryStyle("color: red", g)

	assert.Contains(t, style, "position: absolute")
	assert.Contains(t, style, "left: 12px")
	assert.Contains(t, style, "top: 34.5px")

	parsed, ok := geometryFromStyle(style)
	assert.True(t, ok)
	assert.Equal(t, g, parsed)

	_, ok = geometryFromStyle("color: red")
	assert.False(t, ok)
}
