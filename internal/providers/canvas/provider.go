package canvas

import (
	"context"
	"fmt"

	"github.com/sketchsync/engine/internal/shared/types"
	"github.com/sketchsync/engine/internal/sync"
)

// Provider implements canvas surface synchronization operations.
type Provider struct {
	engine *sync.Engine
}

// NewProvider creates a canvas provider over a sync engine.
func NewProvider(engine *sync.Engine) *Provider {
	return &Provider{engine: engine}
}

// Definition returns service metadata.
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "canvas",
		Name:        "Canvas Sync Service",
		Description: "Element override log, merge, and DOM synchronization for canvas surfaces",
		Category:    types.CategoryCanvas,
		Capabilities: []string{
			"surface_init",
			"root_binding",
			"shape_sync",
			"override_apply",
			"override_merge",
			"version_restore",
			"sync_validation",
			"sync_recovery",
		},
		Tools: []types.Tool{
			{
				ID:          "canvas.sync.init",
				Name:        "Init Surface",
				Description: "Parse surface HTML and create (or hard-reset) its sync state",
				Parameters: []types.Parameter{
					{Name: "html", Type: "string", Description: "Surface HTML content", Required: true},
					{Name: "id", Type: "string", Description: "Surface id (generated when omitted)", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "canvas.sync.bind",
				Name:        "Bind Root",
				Description: "Bind the surface's parsed document as its live render target",
				Parameters: []types.Parameter{
					{Name: "id", Type: "string", Description: "Surface id", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "canvas.sync.shape",
				Name:        "Sync Shape",
				Description: "Mirror shape geometry onto the bound root",
				Parameters: []types.Parameter{
					{Name: "id", Type: "string", Description: "Surface id", Required: true},
					{Name: "x", Type: "number", Description: "X position", Required: true},
					{Name: "y", Type: "number", Description: "Y position", Required: true},
					{Name: "width", Type: "number", Description: "Width", Required: true},
					{Name: "height", Type: "number", Description: "Height", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "canvas.override.apply",
				Name:        "Apply Override",
				Description: "Append an element override and apply the merged patch",
				Parameters: []types.Parameter{
					{Name: "id", Type: "string", Description: "Surface id", Required: true},
					{Name: "selector", Type: "string", Description: "Target selector", Required: true},
					{Name: "timestamp", Type: "number", Description: "Caller-supplied version timestamp", Required: true},
					{Name: "text", Type: "string", Description: "Text content", Required: false},
					{Name: "html", Type: "string", Description: "HTML replacement", Required: false},
					{Name: "attributes", Type: "object", Description: "Attribute map", Required: false},
					{Name: "styles", Type: "object", Description: "Inline style map", Required: false},
					{Name: "ai_generated", Type: "boolean", Description: "Issued by the AI assistant", Required: false},
				},
				Returns: "boolean",
			},
			{
				ID:          "canvas.override.merged",
				Name:        "Merged Override",
				Description: "Return the effective override for a selector",
				Parameters: []types.Parameter{
					{Name: "id", Type: "string", Description: "Surface id", Required: true},
					{Name: "selector", Type: "string", Description: "Target selector", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "canvas.sync.restore",
				Name:        "Restore Version",
				Description: "Filter the override log to entries at or before a timestamp",
				Parameters: []types.Parameter{
					{Name: "id", Type: "string", Description: "Surface id", Required: true},
					{Name: "timestamp", Type: "number", Description: "Restore checkpoint (inclusive)", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "canvas.sync.validate",
				Name:        "Validate Sync",
				Description: "Check geometry consistency and status without side effects",
				Parameters: []types.Parameter{
					{Name: "id", Type: "string", Description: "Surface id", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "canvas.sync.recover",
				Name:        "Recover Sync",
				Description: "Clear a stale error status",
				Parameters: []types.Parameter{
					{Name: "id", Type: "string", Description: "Surface id", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "canvas.sync.state",
				Name:        "Surface State",
				Description: "Read a surface's status and log sizes",
				Parameters: []types.Parameter{
					{Name: "id", Type: "string", Description: "Surface id", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "canvas.sync.clear",
				Name:        "Clear Surfaces",
				Description: "Drop every tracked surface",
				Parameters:  []types.Parameter{},
				Returns:     "boolean",
			},
			{
				ID:          "canvas.render.html",
				Name:        "Render HTML",
				Description: "Serialize the surface's current patched content",
				Parameters: []types.Parameter{
					{Name: "id", Type: "string", Description: "Surface id", Required: true},
				},
				Returns: "string",
			},
		},
	}
}

// Execute routes to the matching operation.
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "canvas.sync.init":
		return p.initSurface(params)
	case "canvas.sync.bind":
		return p.bindRoot(params)
	case "canvas.sync.shape":
		return p.syncShape(params)
	case "canvas.override.apply":
		return p.applyOverride(params)
	case "canvas.override.merged":
		return p.mergedOverride(params)
	case "canvas.sync.restore":
		return p.restore(params)
	case "canvas.sync.validate":
		return p.validate(params)
	case "canvas.sync.recover":
		return p.recover(params)
	case "canvas.sync.state":
		return p.surfaceState(params)
	case "canvas.sync.clear":
		return p.clear()
	case "canvas.render.html":
		return p.renderHTML(params)
	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
