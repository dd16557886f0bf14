package sync

import (
	"github.com/sketchsync/engine/internal/override"
	"github.com/sketchsync/engine/internal/parser"
	"github.com/sketchsync/engine/internal/render"
)

// Status is the lifecycle state of a synced surface.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSyncing Status = "syncing"
	StatusSynced  Status = "synced"
	StatusError   Status = "error"
)

// HistoryEntry records one applied override at its log position. The
// history is a literal append log: entry i always mirrors Overrides[i].
type HistoryEntry struct {
	Override  override.ElementOverride `json:"override"`
	Timestamp int64                    `json:"timestamp"`
}

// ShapeProps carries the content side of a host shape.
type ShapeProps struct {
	HTML      string                     `json:"html"`
	CSS       string                     `json:"css,omitempty"`
	JS        string                     `json:"js,omitempty"`
	Overrides []override.ElementOverride `json:"overrides,omitempty"`
}

// Shape is the host canvas object pushed on every geometry or content
// change. The host owns shape storage; the engine only mirrors it.
type Shape struct {
	ID     string     `json:"id"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Props  ShapeProps `json:"props"`
}

// Geometry extracts the shape's placement.
func (s Shape) Geometry() render.Geometry {
	return render.Geometry{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// State tracks one surface: its parse handle, bound render target,
// override log, and history. Overrides and History are always identical in
// length and order.
type State struct {
	Status    Status
	Overrides []override.ElementOverride
	History   []HistoryEntry
	Parse     *parser.Result
	Target    render.Target
	LastShape *render.Geometry // geometry from the most recent shape sync

	store *override.Store
}

func newState(parse *parser.Result) *State {
	return &State{
		Status: StatusIdle,
		Parse:  parse,
		store:  override.NewStore(),
	}
}

// Store exposes the surface's per-selector override store.
func (s *State) Store() *override.Store {
	return s.store
}
