package override

// Position is an absolute x/y placement in canvas units.
type Position struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// Size is a rendered width/height in canvas units.
type Size struct {
	Width  float64 `json:"width" yaml:"width" toml:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height"`
}

// Snapshot captures pre-override field values for audit and undo display.
// Merge logic carries it through but never consults it otherwise.
type Snapshot struct {
	Text       *string           `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	HTML       *string           `json:"html,omitempty" yaml:"html,omitempty" toml:"html,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty" toml:"attributes,omitempty"`
	Styles     map[string]string `json:"styles,omitempty" yaml:"styles,omitempty" toml:"styles,omitempty"`
	Position   *Position         `json:"position,omitempty" yaml:"position,omitempty" toml:"position,omitempty"`
	Size       *Size             `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
}

// ElementOverride is one patch record against a selector. Every content
// field is optional; records are immutable once stored.
type ElementOverride struct {
	Selector    string            `json:"selector" yaml:"selector" toml:"selector"`
	Text        *string           `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	HTML        *string           `json:"html,omitempty" yaml:"html,omitempty" toml:"html,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty" toml:"attributes,omitempty"`
	Styles      map[string]string `json:"styles,omitempty" yaml:"styles,omitempty" toml:"styles,omitempty"`
	Position    *Position         `json:"position,omitempty" yaml:"position,omitempty" toml:"position,omitempty"`
	Size        *Size             `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	Timestamp   int64             `json:"timestamp" yaml:"timestamp" toml:"timestamp"`
	AIGenerated bool              `json:"aiGenerated,omitempty" yaml:"aiGenerated,omitempty" toml:"aiGenerated,omitempty"`
	Original    *Snapshot         `json:"original,omitempty" yaml:"original,omitempty" toml:"original,omitempty"`
}

// HasContent reports whether the record carries a selector-addressed change.
// Geometry-only records are handled by the sync engine, not the diff engine.
func (o *ElementOverride) HasContent() bool {
	return o.Text != nil || o.HTML != nil || len(o.Attributes) > 0 || len(o.Styles) > 0
}

// Clone returns a deep copy so stored records stay immutable.
func (o ElementOverride) Clone() ElementOverride {
	c := o
	c.Text = clonePtr(o.Text)
	c.HTML = clonePtr(o.HTML)
	c.Attributes = cloneMap(o.Attributes)
	c.Styles = cloneMap(o.Styles)
	if o.Position != nil {
		p := *o.Position
		c.Position = &p
	}
	if o.Size != nil {
		s := *o.Size
		c.Size = &s
	}
	if o.Original != nil {
		snap := o.Original.clone()
		c.Original = &snap
	}
	return c
}

func (s Snapshot) clone() Snapshot {
	c := s
	c.Text = clonePtr(s.Text)
	c.HTML = clonePtr(s.HTML)
	c.Attributes = cloneMap(s.Attributes)
	c.Styles = cloneMap(s.Styles)
	if s.Position != nil {
		p := *s.Position
		c.Position = &p
	}
	if s.Size != nil {
		sz := *s.Size
		c.Size = &sz
	}
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
