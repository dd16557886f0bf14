package render

import (
	"github.com/bytedance/sonic"
)

// MemoryElement is a headless element that records writes instead of
// mutating a document.
type MemoryElement struct {
	Text       string            `json:"text,omitempty"`
	Content    string            `json:"content,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Styles     map[string]string `json:"styles,omitempty"`
}

// SetText implements Element.
func (e *MemoryElement) SetText(text string) { e.Text = text }

// SetAttribute implements Element.
func (e *MemoryElement) SetAttribute(name, value string) {
	if e.Attributes == nil {
		e.Attributes = make(map[string]string)
	}
	e.Attributes[name] = value
}

// SetStyle implements Element.
func (e *MemoryElement) SetStyle(name, value string) {
	if e.Styles == nil {
		e.Styles = make(map[string]string)
	}
	e.Styles[name] = value
}

// ReplaceContent implements Element.
func (e *MemoryElement) ReplaceContent(html string) { e.Content = html }

// MemoryTarget is an in-memory render target for tests and non-browser
// hosts. Selectors resolve against explicitly registered elements.
type MemoryTarget struct {
	geom     Geometry
	elements map[string]*MemoryElement
	order    []string
}

// NewMemoryTarget creates an empty headless target.
func NewMemoryTarget() *MemoryTarget {
	return &MemoryTarget{elements: make(map[string]*MemoryElement)}
}

// Register creates (or returns) the element a selector resolves to.
func (t *MemoryTarget) Register(selector string) *MemoryElement {
	if el, ok := t.elements[selector]; ok {
		return el
	}
	el := &MemoryElement{}
	t.elements[selector] = el
	t.order = append(t.order, selector)
	return el
}

// Element returns a registered element without creating it.
func (t *MemoryTarget) Element(selector string) (*MemoryElement, bool) {
	el, ok := t.elements[selector]
	return el, ok
}

// Query implements Target. Unregistered selectors yield no matches.
func (t *MemoryTarget) Query(selector string) []Element {
	if el, ok := t.elements[selector]; ok {
		return []Element{el}
	}
	return nil
}

// SetGeometry implements Target.
func (t *MemoryTarget) SetGeometry(g Geometry) { t.geom = g }

// Geometry implements Target.
func (t *MemoryTarget) Geometry() Geometry { return t.geom }

// HTML implements Target with a JSON dump of the recorded state, which is
// the headless equivalent of serialized content.
func (t *MemoryTarget) HTML() (string, error) {
	state := make(map[string]*MemoryElement, len(t.elements))
	for _, sel := range t.order {
		state[sel] = t.elements[sel]
	}
	return sonic.MarshalString(state)
}
