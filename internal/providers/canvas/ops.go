package canvas

import (
	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/sketchsync/engine/internal/override"
	"github.com/sketchsync/engine/internal/parser"
	"github.com/sketchsync/engine/internal/render"
	"github.com/sketchsync/engine/internal/shared/types"
	"github.com/sketchsync/engine/internal/sync"
)

func (p *Provider) initSurface(params map[string]interface{}) (*types.Result, error) {
	htmlStr, ok := GetString(params, "html")
	if !ok || htmlStr == "" {
		return Failure("html parameter required")
	}

	id, _ := GetString(params, "id")
	if id == "" {
		id = uuid.New().String()
	}

	parsed, err := parser.Parse(htmlStr)
	if err != nil {
		return Failure(err.Error())
	}

	p.engine.InitSync(id, parsed)
	return Success(map[string]interface{}{
		"id":        id,
		"selectors": len(parsed.Selectors),
		"styles":    len(parsed.Styles),
		"scripts":   len(parsed.Scripts),
		"resources": len(parsed.Resources),
	})
}

func (p *Provider) bindRoot(params map[string]interface{}) (*types.Result, error) {
	id, ok := GetString(params, "id")
	if !ok {
		return Failure("id parameter required")
	}

	state, found := p.engine.GetState(id)
	if !found {
		return Failure("surface not found: " + id)
	}
	if state.Parse == nil {
		return Failure("surface has no parsed content: " + id)
	}

	p.engine.SetRoot(id, render.NewDocumentTarget(state.Parse))
	return Success(map[string]interface{}{"bound": true, "id": id})
}

func (p *Provider) syncShape(params map[string]interface{}) (*types.Result, error) {
	id, ok := GetString(params, "id")
	if !ok {
		return Failure("id parameter required")
	}

	shape := sync.Shape{ID: id}
	var found bool
	if shape.X, found = GetFloat(params, "x"); !found {
		return Failure("x parameter required")
	}
	if shape.Y, found = GetFloat(params, "y"); !found {
		return Failure("y parameter required")
	}
	if shape.Width, found = GetFloat(params, "width"); !found {
		return Failure("width parameter required")
	}
	if shape.Height, found = GetFloat(params, "height"); !found {
		return Failure("height parameter required")
	}

	synced := p.engine.SyncShape(id, shape)
	return Success(map[string]interface{}{"synced": synced, "id": id})
}

func (p *Provider) applyOverride(params map[string]interface{}) (*types.Result, error) {
	id, ok := GetString(params, "id")
	if !ok {
		return Failure("id parameter required")
	}
	selector, ok := GetString(params, "selector")
	if !ok || selector == "" {
		return Failure("selector parameter required")
	}
	timestamp, ok := GetInt64(params, "timestamp")
	if !ok {
		return Failure("timestamp parameter required")
	}

	o := override.ElementOverride{Selector: selector, Timestamp: timestamp}
	if text, ok := GetString(params, "text"); ok {
		o.Text = &text
	}
	if htmlStr, ok := GetString(params, "html"); ok {
		o.HTML = &htmlStr
	}
	if attrs, ok := GetStringMap(params, "attributes"); ok {
		o.Attributes = attrs
	}
	if styles, ok := GetStringMap(params, "styles"); ok {
		o.Styles = styles
	}
	if ai, ok := params["ai_generated"].(bool); ok {
		o.AIGenerated = ai
	}

	applied := p.engine.ApplyOverride(id, o)
	return Success(map[string]interface{}{"applied": applied, "id": id})
}

func (p *Provider) mergedOverride(params map[string]interface{}) (*types.Result, error) {
	id, ok := GetString(params, "id")
	if !ok {
		return Failure("id parameter required")
	}
	selector, ok := GetString(params, "selector")
	if !ok {
		return Failure("selector parameter required")
	}

	merged := p.engine.MergedOverride(id, selector)
	if merged == nil {
		return Failure("no overrides for selector: " + selector)
	}

	// Round-trip through JSON to hand back a plain map.
	data, err := sonic.Marshal(merged)
	if err != nil {
		return Failure(err.Error())
	}
	var out map[string]interface{}
	if err := sonic.Unmarshal(data, &out); err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"override": out})
}

func (p *Provider) restore(params map[string]interface{}) (*types.Result, error) {
	id, ok := GetString(params, "id")
	if !ok {
		return Failure("id parameter required")
	}
	timestamp, ok := GetInt64(params, "timestamp")
	if !ok {
		return Failure("timestamp parameter required")
	}

	restored := p.engine.RestoreToVersion(id, timestamp)
	state, _ := p.engine.GetState(id)
	remaining := 0
	if state != nil {
		remaining = len(state.Overrides)
	}
	return Success(map[string]interface{}{"restored": restored, "remaining": remaining})
}

func (p *Provider) validate(params map[string]interface{}) (*types.Result, error) {
	id, ok := GetString(params, "id")
	if !ok {
		return Failure("id parameter required")
	}

	if err := p.engine.Validate(id); err != nil {
		return Success(map[string]interface{}{"valid": false, "reason": err.Error()})
	}
	return Success(map[string]interface{}{"valid": true})
}

func (p *Provider) recover(params map[string]interface{}) (*types.Result, error) {
	id, ok := GetString(params, "id")
	if !ok {
		return Failure("id parameter required")
	}
	return Success(map[string]interface{}{"recovered": p.engine.Recover(id), "id": id})
}

func (p *Provider) surfaceState(params map[string]interface{}) (*types.Result, error) {
	id, ok := GetString(params, "id")
	if !ok {
		return Failure("id parameter required")
	}

	state, found := p.engine.GetState(id)
	if !found {
		return Failure("surface not found: " + id)
	}
	return Success(map[string]interface{}{
		"id":        id,
		"status":    string(state.Status),
		"overrides": len(state.Overrides),
		"history":   len(state.History),
		"bound":     state.Target != nil,
	})
}

func (p *Provider) clear() (*types.Result, error) {
	p.engine.ClearAll()
	return Success(map[string]interface{}{"cleared": true})
}

func (p *Provider) renderHTML(params map[string]interface{}) (*types.Result, error) {
	id, ok := GetString(params, "id")
	if !ok {
		return Failure("id parameter required")
	}

	state, found := p.engine.GetState(id)
	if !found {
		return Failure("surface not found: " + id)
	}
	if state.Target == nil {
		return Failure("no render target bound: " + id)
	}

	htmlStr, err := state.Target.HTML()
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"html": htmlStr})
}
