package render

import (
	"strconv"
	"strings"
)

// UpsertStyle sets one declaration inside an inline style string, replacing
// an existing declaration for the same property and preserving the rest.
func UpsertStyle(style, name, value string) string {
	decls := parseStyle(style)
	replaced := false
	for i, d := range decls {
		if d[0] == name {
			decls[i][1] = value
			replaced = true
			break
		}
	}
	if !replaced {
		decls = append(decls, [2]string{name, value})
	}

	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d[0]+": "+d[1])
	}
	return strings.Join(parts, "; ")
}

// StyleValue extracts one declaration's value from an inline style string.
func StyleValue(style, name string) (string, bool) {
	for _, d := range parseStyle(style) {
		if d[0] == name {
			return d[1], true
		}
	}
	return "", false
}

// parseStyle splits "a: 1; b: 2" into ordered property/value pairs,
// skipping malformed declarations.
func parseStyle(style string) [][2]string {
	var decls [][2]string
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		decls = append(decls, [2]string{strings.TrimSpace(name), strings.TrimSpace(value)})
	}
	return decls
}

// pixels formats a unit value as a px style value, trimming a trailing .0.
func pixels(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// parsePixels reads a px style value back into units.
func parsePixels(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// geometryStyle renders the four absolute-positioning declarations.
func geometryStyle(style string, g Geometry) string {
	style = UpsertStyle(style, "position", "absolute")
	style = UpsertStyle(style, "left", pixels(g.X))
	style = UpsertStyle(style, "top", pixels(g.Y))
	style = UpsertStyle(style, "width", pixels(g.Width))
	return UpsertStyle(style, "height", pixels(g.Height))
}

// geometryFromStyle reads placement back out of an inline style, reporting
// which fields were present.
func geometryFromStyle(style string) (Geometry, bool) {
	var g Geometry
	found := false
	read := func(name string, dst *float64) {
		if raw, ok := StyleValue(style, name); ok {
			if v, ok := parsePixels(raw); ok {
				*dst = v
				found = true
			}
		}
	}
	read("left", &g.X)
	read("top", &g.Y)
	read("width", &g.Width)
	read("height", &g.Height)
	if !found {
		return Geometry{}, false
	}
	return g, true
}
