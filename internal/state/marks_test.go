package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkTwiceThenUnmark(t *testing.T) {
	s := newTestState("a", "b", "c")
	r := NewStateReducer(Options{})

	s.SelectedIndex = 2
	require.NoError(t, reduce(t, r, s, MarkAction{}))
	assert.Equal(t, 3, s.SelectedIndex, "mark advances the cursor")

	s.SelectedIndex = 2
	require.NoError(t, reduce(t, r, s, MarkAction{}))
	assert.Equal(t, []int{2}, s.MarkedIndices(), "marking twice nets marked once")

	s.SelectedIndex = 2
	require.NoError(t, reduce(t, r, s, UnmarkAction{}))
	assert.Empty(t, s.MarkedIndices())
}

func TestUnmarkAbsentIsNoop(t *testing.T) {
	s := newTestState("a", "b")
	s.SelectedIndex = 3
	r := NewStateReducer(Options{})

	require.NoError(t, reduce(t, r, s, UnmarkAction{}))
	assert.Empty(t, s.MarkedIndices())
	assert.Equal(t, 3, s.SelectedIndex, "advance clamps at the end")
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	s := newTestState("a", "b", "c")
	r := NewStateReducer(Options{})

	s.SelectedIndex = 3
	require.NoError(t, reduce(t, r, s, MarkAction{}))
	before := s.MarkedIndices()

	for _, idx := range []int{2, 3, 4} {
		s.SelectedIndex = idx
		require.NoError(t, reduce(t, r, s, ToggleMarkAction{}))
		s.SelectedIndex = idx
		require.NoError(t, reduce(t, r, s, ToggleMarkAction{}))
		assert.Equal(t, before, s.MarkedIndices(), "index %d", idx)
	}
}

func TestBulkMarkFromIndexZero(t *testing.T) {
	s := newTestState("a", "b", "c", "d")
	r := NewStateReducer(Options{})

	require.NoError(t, reduce(t, r, s, MarkAction{}))
	assert.Equal(t, []int{2, 3, 4, 5}, s.MarkedIndices())
	assert.Equal(t, 0, s.SelectedIndex, "bulk mark does not move the cursor")

	require.NoError(t, reduce(t, r, s, UnmarkAction{}))
	assert.Empty(t, s.MarkedIndices())
	assert.Equal(t, 0, s.SelectedIndex)
}

func TestBulkToggleFromIndexZero(t *testing.T) {
	s := newTestState("a", "b")
	r := NewStateReducer(Options{})

	require.NoError(t, reduce(t, r, s, ToggleMarkAction{}))
	assert.Equal(t, []int{2, 3}, s.MarkedIndices())
	require.NoError(t, reduce(t, r, s, ToggleMarkAction{}))
	assert.Empty(t, s.MarkedIndices())
}

func TestParentEntryNeverMarked(t *testing.T) {
	s := newTestState("a")
	s.SelectedIndex = 1
	r := NewStateReducer(Options{})

	require.NoError(t, reduce(t, r, s, MarkAction{}, ToggleMarkAction{}))
	assert.Empty(t, s.MarkedIndices())
	assert.Equal(t, 1, s.SelectedIndex)
}

func TestMarksFollowIdentityAcrossReorder(t *testing.T) {
	s := newTestState("b", "c")
	r := NewStateReducer(Options{})
	s.SelectedIndex = 3
	require.NoError(t, reduce(t, r, s, MarkAction{}))
	require.Equal(t, []int{3}, s.MarkedIndices())

	// A new entry sorts ahead of the marked one.
	s.Files = []FileEntry{{Name: "."}, {Name: ".."}, {Name: "a"}, {Name: "b"}, {Name: "c"}}
	assert.Equal(t, []int{4}, s.MarkedIndices())
	assert.True(t, s.IsMarked(4))
	assert.False(t, s.IsMarked(3))
}

func TestPruneMarksDropsVanishedEntries(t *testing.T) {
	s := newTestState("a", "b", "c")
	s.Marks = map[string]struct{}{"a": {}, "c": {}}

	s.Files = []FileEntry{{Name: "."}, {Name: ".."}, {Name: "a"}, {Name: "b"}}
	s.pruneMarks()
	assert.Equal(t, map[string]struct{}{"a": {}}, s.Marks)
}
