package diff

import (
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/sketchsync/engine/internal/logging"
	"github.com/sketchsync/engine/internal/monitoring"
	"github.com/sketchsync/engine/internal/override"
	"github.com/sketchsync/engine/internal/render"
)

// Engine applies merged overrides onto render targets.
type Engine struct {
	log       *logging.Logger
	metrics   *monitoring.Metrics
	sanitizer *bluemonday.Policy
}

// NewEngine creates a diff engine. Metrics may be nil.
func NewEngine(log *logging.Logger, metrics *monitoring.Metrics) *Engine {
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{log: log, metrics: metrics}
}

// EnableSanitizer runs html replacement fragments through a UGC policy
// before they reach the document. Intended for AI-generated markup.
func (e *Engine) EnableSanitizer() {
	e.sanitizer = bluemonday.UGCPolicy()
}

// Apply writes each merged override onto the target and returns how many
// were applied. An override whose selector matches nothing is skipped with
// a warning; the rest of the batch still applies. Re-applying the same set
// is a no-op, since every field write is an unconditional overwrite.
func (e *Engine) Apply(target render.Target, overrides []override.ElementOverride) int {
	applied := 0
	for _, o := range overrides {
		if !o.HasContent() {
			// Geometry-only records carry nothing for selector diffing.
			continue
		}
		elems := target.Query(o.Selector)
		if len(elems) == 0 {
			e.log.Warn("override selector matched nothing, skipping",
				zap.String("selector", o.Selector),
				zap.Int64("timestamp", o.Timestamp))
			e.metrics.RecordSelectorMiss()
			continue
		}
		for _, elem := range elems {
			e.applyToElement(elem, &o)
		}
		applied++
	}
	return applied
}

// applyToElement writes one override's fields in fixed order:
// attributes, styles, then content.
func (e *Engine) applyToElement(elem render.Element, o *override.ElementOverride) {
	for name, value := range o.Attributes {
		elem.SetAttribute(name, value)
	}
	for name, value := range o.Styles {
		elem.SetStyle(name, value)
	}

	// html is a full-subtree replacement and supersedes any text node the
	// text field would otherwise target.
	switch {
	case o.HTML != nil:
		fragment := *o.HTML
		if e.sanitizer != nil {
			fragment = e.sanitizer.Sanitize(fragment)
		}
		elem.ReplaceContent(fragment)
	case o.Text != nil:
		elem.SetText(*o.Text)
	}
}

// ApplyToHTML parses raw HTML, applies the overrides, and returns the
// patched document string.
func (e *Engine) ApplyToHTML(htmlStr string, overrides []override.ElementOverride) (string, error) {
	target, err := render.NewDocumentTargetFromHTML(htmlStr)
	if err != nil {
		return "", err
	}
	e.Apply(target, overrides)
	return target.HTML()
}
