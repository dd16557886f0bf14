// Package service provides the registry that catalogs tool providers and
// routes tool execution to them by tool-id prefix.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sketchsync/engine/internal/shared/types"
)

// Provider is the interface every tool provider implements.
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Registry manages provider registration and tool execution.
type Registry struct {
	providers sync.Map // service id -> Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a provider under its definition id.
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}
	r.providers.Store(def.ID, provider)
	return nil
}

// Unregister removes a provider.
func (r *Registry) Unregister(serviceID string) {
	r.providers.Delete(serviceID)
}

// Get retrieves a provider by service id.
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.providers.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns every registered service definition, optionally filtered
// by category.
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.providers.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	return services
}

// Execute routes a tool call to the provider owning the tool's service
// prefix ("canvas.sync.init" -> "canvas").
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok {
		return nil, fmt.Errorf("invalid tool id: %s", toolID)
	}
	provider, found := r.Get(serviceID)
	if !found {
		return nil, fmt.Errorf("service not found: %s", serviceID)
	}
	return provider.Execute(ctx, toolID, params, appCtx)
}
