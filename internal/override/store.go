package override

import "sort"

// Store keeps a per-selector, append-only log of overrides.
// It is scoped to a single surface and is not safe for concurrent use;
// the engine serializes access per surface.
type Store struct {
	buckets   map[string][]ElementOverride
	selectors []string // bucket creation order
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		buckets: make(map[string][]ElementOverride),
	}
}

// Add appends o to its selector bucket, creating the bucket if absent.
func (s *Store) Add(o ElementOverride) ElementOverride {
	stored := o.Clone()
	if _, ok := s.buckets[o.Selector]; !ok {
		s.selectors = append(s.selectors, o.Selector)
	}
	s.buckets[o.Selector] = append(s.buckets[o.Selector], stored)
	return stored
}

// Get returns the bucket for selector in insertion order. Elements are
// deep copies; callers cannot reach the stored records through them.
func (s *Store) Get(selector string) []ElementOverride {
	bucket := s.buckets[selector]
	out := make([]ElementOverride, len(bucket))
	for i := range bucket {
		out[i] = bucket[i].Clone()
	}
	return out
}

// Merge folds the selector's bucket left-to-right into one effective
// override. Application order is authoritative: a later entry beats an
// earlier one even when its timestamp is numerically smaller. Returns nil
// when no bucket exists.
func (s *Store) Merge(selector string) *ElementOverride {
	bucket, ok := s.buckets[selector]
	if !ok {
		return nil
	}

	merged := ElementOverride{Selector: selector}
	for _, o := range bucket {
		if o.Text != nil {
			merged.Text = clonePtr(o.Text)
		}
		if o.HTML != nil {
			merged.HTML = clonePtr(o.HTML)
		}
		for k, v := range o.Attributes {
			if merged.Attributes == nil {
				merged.Attributes = make(map[string]string, len(o.Attributes))
			}
			merged.Attributes[k] = v
		}
		for k, v := range o.Styles {
			if merged.Styles == nil {
				merged.Styles = make(map[string]string, len(o.Styles))
			}
			merged.Styles[k] = v
		}
		if o.Position != nil {
			p := *o.Position
			merged.Position = &p
		}
		if o.Size != nil {
			sz := *o.Size
			merged.Size = &sz
		}
		merged.Timestamp = o.Timestamp
		if o.AIGenerated {
			merged.AIGenerated = true
		}
	}
	merged.Original = mergeOriginals(bucket)
	return &merged
}

// mergeOriginals keeps, per field, the baseline from the earliest entry
// that both modified the field and recorded its original value.
func mergeOriginals(bucket []ElementOverride) *Snapshot {
	var snap Snapshot
	found := false
	for _, o := range bucket {
		if o.Original == nil {
			continue
		}
		if o.Text != nil && o.Original.Text != nil && snap.Text == nil {
			snap.Text = clonePtr(o.Original.Text)
			found = true
		}
		if o.HTML != nil && o.Original.HTML != nil && snap.HTML == nil {
			snap.HTML = clonePtr(o.Original.HTML)
			found = true
		}
		if len(o.Attributes) > 0 && o.Original.Attributes != nil && snap.Attributes == nil {
			snap.Attributes = cloneMap(o.Original.Attributes)
			found = true
		}
		if len(o.Styles) > 0 && o.Original.Styles != nil && snap.Styles == nil {
			snap.Styles = cloneMap(o.Original.Styles)
			found = true
		}
		if o.Position != nil && o.Original.Position != nil && snap.Position == nil {
			p := *o.Original.Position
			snap.Position = &p
			found = true
		}
		if o.Size != nil && o.Original.Size != nil && snap.Size == nil {
			sz := *o.Original.Size
			snap.Size = &sz
			found = true
		}
	}
	if !found {
		return nil
	}
	return &snap
}

// Remove deletes the first bucket entry with a matching timestamp and
// reports whether one was found. An emptied bucket is dropped entirely.
func (s *Store) Remove(selector string, timestamp int64) bool {
	bucket, ok := s.buckets[selector]
	if !ok {
		return false
	}
	for i, o := range bucket {
		if o.Timestamp == timestamp {
			bucket = append(bucket[:i], bucket[i+1:]...)
			if len(bucket) == 0 {
				delete(s.buckets, selector)
				s.dropSelector(selector)
			} else {
				s.buckets[selector] = bucket
			}
			return true
		}
	}
	return false
}

func (s *Store) dropSelector(selector string) {
	for i, sel := range s.selectors {
		if sel == selector {
			s.selectors = append(s.selectors[:i], s.selectors[i+1:]...)
			return
		}
	}
}

// All flattens every bucket into one sequence sorted ascending by
// timestamp. This is a presentation order, distinct from the per-selector
// application order used for merging.
func (s *Store) All() []ElementOverride {
	out := make([]ElementOverride, 0, s.Count())
	for _, sel := range s.selectors {
		for _, o := range s.buckets[sel] {
			out = append(out, o.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})
	return out
}

// Clear drops every bucket.
func (s *Store) Clear() {
	s.buckets = make(map[string][]ElementOverride)
	s.selectors = nil
}

// Count returns the total number of stored overrides.
func (s *Store) Count() int {
	n := 0
	for _, bucket := range s.buckets {
		n += len(bucket)
	}
	return n
}

// Selectors returns every selector with a live bucket, in creation order.
func (s *Store) Selectors() []string {
	out := make([]string, len(s.selectors))
	copy(out, s.selectors)
	return out
}

// Has reports whether the selector has at least one override.
func (s *Store) Has(selector string) bool {
	return len(s.buckets[selector]) > 0
}
