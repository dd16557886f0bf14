package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// MaxHTMLSize limits HTML input to 10MB to prevent memory exhaustion.
const MaxHTMLSize = 10 * 1024 * 1024

// Result is the opaque parse handle handed to the sync engine.
type Result struct {
	Doc       *goquery.Document
	Root      *html.Node
	Selectors map[string]int // "#id", ".class", "tag" -> occurrence count
	Styles    []string       // inline <style> blocks
	Scripts   []string       // script src URLs or inline bodies
	Resources []string       // link hrefs and img sources
}

// Parse loads HTML with automatic charset detection and builds the handle.
func Parse(htmlStr string) (*Result, error) {
	return ParseWithLimit(htmlStr, MaxHTMLSize)
}

// ParseWithLimit parses with a caller-supplied input cap.
func ParseWithLimit(htmlStr string, maxSize int) (*Result, error) {
	if len(htmlStr) == 0 {
		return nil, fmt.Errorf("html content required")
	}
	if maxSize > 0 && len(htmlStr) > maxSize {
		return nil, fmt.Errorf("html exceeds maximum size of %d bytes", maxSize)
	}

	doc, err := loadDocument(htmlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	res := &Result{
		Doc:       doc,
		Root:      doc.Get(0),
		Selectors: make(map[string]int),
	}
	res.index()
	return res, nil
}

// loadDocument parses with charset conversion, falling back to direct
// UTF-8 parsing when conversion fails.
func loadDocument(htmlStr string) (*goquery.Document, error) {
	data := []byte(htmlStr)
	reader := bytes.NewReader(data)

	utf8Reader, err := charset.NewReader(reader, detectCharset(data))
	if err != nil {
		return goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	}
	return goquery.NewDocumentFromReader(utf8Reader)
}

// detectCharset returns the detected charset, defaulting to utf-8.
func detectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// index walks every element collecting the selector index and the
// style/script/resource lists.
func (r *Result) index() {
	r.Doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		node := sel.Get(0)
		if node == nil {
			return
		}
		r.Selectors[node.Data]++
		if id, ok := sel.Attr("id"); ok && id != "" {
			r.Selectors["#"+id]++
		}
		if classes, ok := sel.Attr("class"); ok {
			for _, cls := range strings.Fields(classes) {
				r.Selectors["."+cls]++
			}
		}

		switch node.Data {
		case "style":
			if text := strings.TrimSpace(sel.Text()); text != "" {
				r.Styles = append(r.Styles, text)
			}
		case "script":
			if src, ok := sel.Attr("src"); ok && src != "" {
				r.Scripts = append(r.Scripts, src)
			} else if text := strings.TrimSpace(sel.Text()); text != "" {
				r.Scripts = append(r.Scripts, text)
			}
		case "link":
			if href, ok := sel.Attr("href"); ok && href != "" {
				r.Resources = append(r.Resources, href)
			}
		case "img":
			if src, ok := sel.Attr("src"); ok && src != "" {
				r.Resources = append(r.Resources, src)
			}
		}
	})
}

// Matches reports how many indexed occurrences a simple selector has.
// Compound selectors resolve through the document directly.
func (r *Result) Matches(selector string) (n int) {
	if n, ok := r.Selectors[selector]; ok {
		return n
	}
	// cascadia panics on invalid selectors; an unmatchable selector counts
	// as zero matches.
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()
	return r.Doc.Find(selector).Length()
}

// HTML serializes the current document state.
func (r *Result) HTML() (string, error) {
	return r.Doc.Html()
}
