package sync

import (
	"math"
	stdsync "sync"

	"go.uber.org/zap"

	"github.com/sketchsync/engine/internal/diff"
	"github.com/sketchsync/engine/internal/logging"
	"github.com/sketchsync/engine/internal/monitoring"
	"github.com/sketchsync/engine/internal/override"
	"github.com/sketchsync/engine/internal/parser"
	"github.com/sketchsync/engine/internal/render"
)

// DefaultTolerance is the allowed geometry drift, in canvas units,
// between a shape and its DOM mirror.
const DefaultTolerance = 2.0

// Engine owns the id -> surface-state registry. Construct one per
// document; instances are fully isolated.
type Engine struct {
	mu        stdsync.RWMutex
	states    map[string]*State
	differ    *diff.Engine
	log       *logging.Logger
	metrics   *monitoring.Metrics
	tolerance float64
}

// NewEngine creates a sync engine. Metrics may be nil.
func NewEngine(differ *diff.Engine, log *logging.Logger, metrics *monitoring.Metrics) *Engine {
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{
		states:    make(map[string]*State),
		differ:    differ,
		log:       log,
		metrics:   metrics,
		tolerance: DefaultTolerance,
	}
}

// SetTolerance overrides the geometry drift allowance.
func (e *Engine) SetTolerance(units float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tolerance = units
}

// InitSync creates the surface's state, or hard-resets it when the id
// already exists: prior overrides and history are discarded.
func (e *Engine) InitSync(id string, parse *parser.Result) *State {
	e.mu.Lock()
	defer e.mu.Unlock()

	state := newState(parse)
	e.states[id] = state
	e.metrics.SetSurfaces(len(e.states))
	e.log.Debug("surface initialized", zap.String("surface", id))
	return state
}

// SetRoot binds the live render target. Required before SyncShape or
// ApplyOverride can mutate real content. Unknown id is a no-op.
func (e *Engine) SetRoot(id string, target render.Target) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.states[id]
	if !ok {
		return false
	}
	state.Target = target
	return true
}

// SyncShape mirrors the shape's x/y/width/height onto the bound root's
// absolute positioning and marks the surface synced. Returns false when
// the id is unknown or no root is bound.
func (e *Engine) SyncShape(id string, shape Shape) bool {
	e.mu.Lock()
	state, ok := e.states[id]
	if !ok || state.Target == nil {
		e.mu.Unlock()
		return false
	}
	state.Status = StatusSyncing
	target := state.Target
	e.mu.Unlock()

	// The geometry write happens outside the registry lock; it can trigger
	// host observers that re-enter the engine synchronously.
	geom := shape.Geometry()
	target.SetGeometry(geom)

	e.mu.Lock()
	// Only finalize if the surface was not reset or cleared by a
	// re-entrant call during the write.
	if cur, ok := e.states[id]; ok && cur == state {
		cur.LastShape = &geom
		cur.Status = StatusSynced
	}
	e.mu.Unlock()
	return true
}

// ApplyOverride appends the override to the surface's log and history,
// then — when a root is bound — merges the affected selector and applies
// the merged patch. Never touches any other surface.
//
// The log append completes before any DOM write, so a host observer that
// re-enters the engine from the mutation sees no partial state.
func (e *Engine) ApplyOverride(id string, o override.ElementOverride) bool {
	e.mu.Lock()
	state, ok := e.states[id]
	if !ok {
		e.mu.Unlock()
		return false
	}

	stored := state.store.Add(o)
	state.Overrides = append(state.Overrides, stored)
	state.History = append(state.History, HistoryEntry{Override: stored, Timestamp: stored.Timestamp})

	target := state.Target
	var merged *override.ElementOverride
	if target != nil {
		state.Status = StatusSyncing
		merged = state.store.Merge(o.Selector)
	}
	e.mu.Unlock()

	if target != nil && merged != nil {
		// DOM mutation happens outside the registry lock; it can trigger
		// host observers that re-enter the engine synchronously.
		e.differ.Apply(target, []override.ElementOverride{*merged})
		e.mu.Lock()
		// A re-entrant InitSync swaps in a fresh state; leave that one at
		// idle instead of stamping it synced.
		if cur, ok := e.states[id]; ok && cur == state {
			cur.Status = StatusSynced
		}
		e.mu.Unlock()
	}

	e.metrics.RecordOverride()
	return true
}

// MergedOverride returns the effective override for a selector on the
// surface, or nil when the surface or bucket does not exist.
func (e *Engine) MergedOverride(id, selector string) *override.ElementOverride {
	e.mu.RLock()
	defer e.mu.RUnlock()

	state, ok := e.states[id]
	if !ok {
		return nil
	}
	return state.store.Merge(selector)
}

// RestoreToVersion filters the surface's overrides and history in place,
// keeping only entries with timestamp <= target. This is a value filter,
// not a positional truncation: entries appended out of timestamp order are
// kept or dropped by the predicate alone. Irreversible; there is no redo.
func (e *Engine) RestoreToVersion(id string, targetTimestamp int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.states[id]
	if !ok {
		return false
	}

	kept := state.Overrides[:0]
	for _, o := range state.Overrides {
		if o.Timestamp <= targetTimestamp {
			kept = append(kept, o)
		}
	}
	state.Overrides = kept

	keptHistory := state.History[:0]
	for _, h := range state.History {
		if h.Timestamp <= targetTimestamp {
			keptHistory = append(keptHistory, h)
		}
	}
	state.History = keptHistory

	// Rebuild the store so later merges cannot resurrect dropped entries.
	state.store.Clear()
	for _, o := range state.Overrides {
		state.store.Add(o)
	}

	e.metrics.RecordRestore()
	e.log.Info("surface restored",
		zap.String("surface", id),
		zap.Int64("target_timestamp", targetTimestamp),
		zap.Int("remaining", len(state.Overrides)))
	return true
}

// Validate checks, without side effects, that the surface is not stuck in
// the error state and that the bound root's geometry matches the last
// synced shape geometry within tolerance.
func (e *Engine) Validate(id string) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	state, ok := e.states[id]
	if !ok {
		return ErrUnknownSurface
	}
	if state.Status == StatusError {
		return ErrStaleStatus
	}
	if state.Target == nil || state.LastShape == nil {
		return nil
	}

	actual := state.Target.Geometry()
	expected := *state.LastShape
	checks := []struct {
		field            string
		expected, actual float64
	}{
		{"x", expected.X, actual.X},
		{"y", expected.Y, actual.Y},
		{"width", expected.Width, actual.Width},
		{"height", expected.Height, actual.Height},
	}
	for _, c := range checks {
		if math.Abs(c.expected-c.actual) > e.tolerance {
			return &DriftError{
				ID:        id,
				Field:     c.field,
				Expected:  c.expected,
				Actual:    c.actual,
				Tolerance: e.tolerance,
			}
		}
	}
	return nil
}

// MarkError forces the surface into the error state. Only an explicit
// Recover clears it.
func (e *Engine) MarkError(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.states[id]
	if !ok {
		return false
	}
	state.Status = StatusError
	return true
}

// Recover unconditionally marks the surface synced. It is optimistic: no
// data is replayed or re-validated, only the stale flag clears. Idempotent.
func (e *Engine) Recover(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.states[id]
	if !ok {
		return false
	}
	state.Status = StatusSynced
	e.metrics.RecordRecovery()
	return true
}

// ClearAll drops every tracked surface.
func (e *Engine) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.states = make(map[string]*State)
	e.metrics.SetSurfaces(0)
}

// GetState returns the surface's state for inspection.
func (e *Engine) GetState(id string) (*State, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	state, ok := e.states[id]
	return state, ok
}

// Count returns the number of tracked surfaces.
func (e *Engine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.states)
}
