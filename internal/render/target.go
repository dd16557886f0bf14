package render

// Geometry is the absolute placement of a bound root, in canvas units.
type Geometry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Element is one resolved node the diff engine mutates.
type Element interface {
	// SetText replaces the element's text content.
	SetText(text string)
	// SetAttribute sets one attribute value.
	SetAttribute(name, value string)
	// SetStyle upserts one inline style declaration.
	SetStyle(name, value string)
	// ReplaceContent swaps the element's inner content for the given HTML.
	ReplaceContent(html string)
}

// Target is the host-supplied mutable content surface. A non-browser host
// substitutes its own implementation.
type Target interface {
	// Query resolves a selector to zero or more elements. An invalid or
	// unmatched selector yields an empty result, never an error.
	Query(selector string) []Element
	// SetGeometry writes absolute positioning onto the bound root.
	SetGeometry(g Geometry)
	// Geometry reads the root's current placement.
	Geometry() Geometry
	// HTML serializes the target's current content.
	HTML() (string, error)
}
