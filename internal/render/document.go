package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/sketchsync/engine/internal/parser"
)

// DocumentTarget is a render target backed by a parsed HTML document.
// Selectors beginning with "/" resolve as XPath, everything else as CSS.
type DocumentTarget struct {
	doc  *goquery.Document
	node *html.Node
	root *goquery.Selection
	geom Geometry
}

// NewDocumentTarget binds a target to an existing parse handle. Mutations
// flow through to the handle's document.
func NewDocumentTarget(res *parser.Result) *DocumentTarget {
	t := &DocumentTarget{doc: res.Doc, node: res.Root}
	t.root = rootSelection(res.Doc)
	return t
}

// NewDocumentTargetFromHTML parses raw HTML and binds a target to it.
func NewDocumentTargetFromHTML(htmlStr string) (*DocumentTarget, error) {
	res, err := parser.Parse(htmlStr)
	if err != nil {
		return nil, err
	}
	return NewDocumentTarget(res), nil
}

// rootSelection picks the bound root: the body's first element child when
// present, else the body itself.
func rootSelection(doc *goquery.Document) *goquery.Selection {
	body := doc.Find("body")
	if first := body.Children().First(); first.Length() > 0 {
		return first
	}
	return body
}

// Query resolves a selector to matched elements. Invalid selectors and
// empty matches both yield an empty result.
func (t *DocumentTarget) Query(selector string) []Element {
	if strings.HasPrefix(selector, "/") {
		return t.queryXPath(selector)
	}
	return t.queryCSS(selector)
}

func (t *DocumentTarget) queryCSS(selector string) (elems []Element) {
	// cascadia panics on invalid selectors; treat those as zero matches.
	defer func() {
		if recover() != nil {
			elems = nil
		}
	}()
	t.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		elems = append(elems, &domElement{sel: sel})
	})
	return elems
}

func (t *DocumentTarget) queryXPath(expr string) []Element {
	nodes, err := htmlquery.QueryAll(t.node, expr)
	if err != nil {
		return nil
	}
	elems := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		// Wrapping the shared node keeps mutations visible on the document.
		elems = append(elems, &domElement{sel: goquery.NewDocumentFromNode(n).Selection})
	}
	return elems
}

// SetGeometry writes absolute positioning onto the bound root's inline style.
func (t *DocumentTarget) SetGeometry(g Geometry) {
	t.geom = g
	style := t.root.AttrOr("style", "")
	t.root.SetAttr("style", geometryStyle(style, g))
}

// Geometry reads placement back from the root's inline style, falling back
// to the last written value when the style has been stripped.
func (t *DocumentTarget) Geometry() Geometry {
	if g, ok := geometryFromStyle(t.root.AttrOr("style", "")); ok {
		return g
	}
	return t.geom
}

// HTML serializes the current document.
func (t *DocumentTarget) HTML() (string, error) {
	return t.doc.Html()
}

// domElement adapts a goquery selection to the Element interface.
type domElement struct {
	sel *goquery.Selection
}

func (e *domElement) SetText(text string) {
	e.sel.SetText(text)
}

func (e *domElement) SetAttribute(name, value string) {
	e.sel.SetAttr(name, value)
}

func (e *domElement) SetStyle(name, value string) {
	e.sel.SetAttr("style", UpsertStyle(e.sel.AttrOr("style", ""), name, value))
}

func (e *domElement) ReplaceContent(html string) {
	e.sel.SetHtml(html)
}
