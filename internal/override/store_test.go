package override

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMergeInsertionOrderBeatsTimestamp(t *testing.T) {
	s := NewStore()
	s.Add(ElementOverride{Selector: "#t", Text: strPtr("A"), Timestamp: 100})
	s.Add(ElementOverride{Selector: "#t", Text: strPtr("B"), Timestamp: 50})

	merged := s.Merge("#t")
	require.NotNil(t, merged)
	// Application order is authoritative even against a larger earlier
	// timestamp.
	assert.Equal(t, "B", *merged.Text)
	assert.Equal(t, int64(50), merged.Timestamp)
}

func TestMergeMissingBucket(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.Merge("#missing"))
}

func TestMergeStyleAndAttributeUnion(t *testing.T) {
	s := NewStore()
	s.Add(ElementOverride{
		Selector:   "#box",
		Styles:     map[string]string{"color": "red", "font-size": "14px"},
		Attributes: map[string]string{"role": "note"},
		Timestamp:  1,
	})
	s.Add(ElementOverride{
		Selector:   "#box",
		Styles:     map[string]string{"color": "blue"},
		Attributes: map[string]string{"title": "hint"},
		Timestamp:  2,
	})

	merged := s.Merge("#box")
	require.NotNil(t, merged)
	// Later entries overwrite only the keys they set.
	assert.Equal(t, map[string]string{"color": "blue", "font-size": "14px"}, merged.Styles)
	assert.Equal(t, map[string]string{"role": "note", "title": "hint"}, merged.Attributes)
	assert.Equal(t, int64(2), merged.Timestamp)
}

func TestMergeScalarLastDefinedWins(t *testing.T) {
	s := NewStore()
	s.Add(ElementOverride{Selector: "#t", Text: strPtr("first"), Timestamp: 1})
	s.Add(ElementOverride{Selector: "#t", Styles: map[string]string{"color": "red"}, Timestamp: 2})

	merged := s.Merge("#t")
	require.NotNil(t, merged)
	// The styles-only entry does not clear the earlier text.
	assert.Equal(t, "first", *merged.Text)
	assert.Equal(t, map[string]string{"color": "red"}, merged.Styles)
	assert.Equal(t, int64(2), merged.Timestamp)
}

func TestMergeAIGeneratedAnyTrue(t *testing.T) {
	s := NewStore()
	s.Add(ElementOverride{Selector: "#t", Text: strPtr("a"), Timestamp: 1})
	s.Add(ElementOverride{Selector: "#t", Text: strPtr("b"), Timestamp: 2, AIGenerated: true})
	s.Add(ElementOverride{Selector: "#t", Text: strPtr("c"), Timestamp: 3})

	merged := s.Merge("#t")
	require.NotNil(t, merged)
	assert.True(t, merged.AIGenerated)
}

func TestMergeOriginalKeepsEarliestBaseline(t *testing.T) {
	s := NewStore()
	s.Add(ElementOverride{
		Selector:  "#t",
		Text:      strPtr("v1"),
		Timestamp: 1,
		Original:  &Snapshot{Text: strPtr("pristine")},
	})
	s.Add(ElementOverride{
		Selector:  "#t",
		Text:      strPtr("v2"),
		Timestamp: 2,
		Original:  &Snapshot{Text: strPtr("v1")},
	})
	s.Add(ElementOverride{
		Selector:  "#t",
		Styles:    map[string]string{"color": "red"},
		Timestamp: 3,
		Original:  &Snapshot{Styles: map[string]string{"color": "black"}},
	})

	merged := s.Merge("#t")
	require.NotNil(t, merged)
	assert.Equal(t, "v2", *merged.Text)
	require.NotNil(t, merged.Original)
	// The first recorded pre-edit baseline survives later edits.
	assert.Equal(t, "pristine", *merged.Original.Text)
	assert.Equal(t, map[string]string{"color": "black"}, merged.Original.Styles)
}

func TestMergeOriginalRequiresModifiedField(t *testing.T) {
	s := NewStore()
	// This entry supplies an original text baseline but does not modify
	// text, so the baseline must not be picked up.
	s.Add(ElementOverride{
		Selector:  "#t",
		Styles:    map[string]string{"color": "red"},
		Timestamp: 1,
		Original:  &Snapshot{Text: strPtr("ignored")},
	})
	s.Add(ElementOverride{
		Selector:  "#t",
		Text:      strPtr("new"),
		Timestamp: 2,
		Original:  &Snapshot{Text: strPtr("old")},
	})

	merged := s.Merge("#t")
	require.NotNil(t, merged)
	require.NotNil(t, merged.Original)
	assert.Equal(t, "old", *merged.Original.Text)
}

func TestAddAndCount(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		s.Add(ElementOverride{Selector: "#t", Text: strPtr("x"), Timestamp: int64(i)})
	}
	s.Add(ElementOverride{Selector: ".other", Timestamp: 99})

	assert.Len(t, s.Get("#t"), 5)
	assert.Equal(t, 6, s.Count())
	assert.True(t, s.Has("#t"))
	assert.False(t, s.Has("#nope"))
	assert.Equal(t, []string{"#t", ".other"}, s.Selectors())
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.Add(ElementOverride{Selector: "#t", Timestamp: 1})
	s.Add(ElementOverride{Selector: "#t", Timestamp: 2})

	assert.False(t, s.Remove("#t", 42))
	assert.True(t, s.Remove("#t", 1))
	assert.Len(t, s.Get("#t"), 1)

	// Bucket is dropped entirely once empty.
	assert.True(t, s.Remove("#t", 2))
	assert.False(t, s.Has("#t"))
	assert.Empty(t, s.Selectors())
	assert.Nil(t, s.Merge("#t"))
}

func TestRemoveFirstMatchOnly(t *testing.T) {
	s := NewStore()
	s.Add(ElementOverride{Selector: "#t", Text: strPtr("a"), Timestamp: 7})
	s.Add(ElementOverride{Selector: "#t", Text: strPtr("b"), Timestamp: 7})

	require.True(t, s.Remove("#t", 7))
	bucket := s.Get("#t")
	require.Len(t, bucket, 1)
	assert.Equal(t, "b", *bucket[0].Text)
}

func TestAllSortedByTimestamp(t *testing.T) {
	s := NewStore()
	s.Add(ElementOverride{Selector: "#a", Timestamp: 30})
	s.Add(ElementOverride{Selector: "#b", Timestamp: 10})
	s.Add(ElementOverride{Selector: "#a", Timestamp: 20})

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, int64(10), all[0].Timestamp)
	assert.Equal(t, int64(20), all[1].Timestamp)
	assert.Equal(t, int64(30), all[2].Timestamp)
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Add(ElementOverride{Selector: "#t", Timestamp: 1})
	s.Clear()
	assert.Zero(t, s.Count())
	assert.Empty(t, s.Selectors())
}

func TestStoredRecordsAreIsolated(t *testing.T) {
	s := NewStore()
	attrs := map[string]string{"role": "note"}
	s.Add(ElementOverride{Selector: "#t", Attributes: attrs, Timestamp: 1})

	// Mutating the caller's map after Add must not leak into the store.
	attrs["role"] = "changed"
	merged := s.Merge("#t")
	require.NotNil(t, merged)
	assert.Equal(t, "note", merged.Attributes["role"])
}

func TestGetReturnsIsolatedCopies(t *testing.T) {
	s := NewStore()
	s.Add(ElementOverride{
		Selector:   "#t",
		Text:       strPtr("stored"),
		Styles:     map[string]string{"color": "red"},
		Attributes: map[string]string{"role": "note"},
		Timestamp:  1,
	})

	// Mutating a returned entry must not reach the stored record.
	got := s.Get("#t")
	require.Len(t, got, 1)
	*got[0].Text = "mutated"
	got[0].Styles["color"] = "green"
	got[0].Attributes["role"] = "changed"

	again := s.Get("#t")
	require.Len(t, again, 1)
	assert.Equal(t, "stored", *again[0].Text)
	assert.Equal(t, "red", again[0].Styles["color"])
	assert.Equal(t, "note", again[0].Attributes["role"])

	merged := s.Merge("#t")
	require.NotNil(t, merged)
	assert.Equal(t, "stored", *merged.Text)
	assert.Equal(t, "red", merged.Styles["color"])
}

func TestAllReturnsIsolatedCopies(t *testing.T) {
	s := NewStore()
	s.Add(ElementOverride{Selector: "#t", Styles: map[string]string{"color": "red"}, Timestamp: 1})

	all := s.All()
	require.Len(t, all, 1)
	all[0].Styles["color"] = "green"

	merged := s.Merge("#t")
	require.NotNil(t, merged)
	assert.Equal(t, "red", merged.Styles["color"])
}
