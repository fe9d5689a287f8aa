package fs

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestSortEntriesPseudoFirstThenBytewise(t *testing.T) {
	entries := []Entry{{Name: "apple"}, {Name: ".."}, {Name: "Banana"}, {Name: "."}, {Name: "cherry"}}
	SortEntries(entries)
	assert.Equal(t, []string{".", "..", "Banana", "apple", "cherry"}, names(entries))
}

func TestSortEntriesAnyInputOrder(t *testing.T) {
	base := []string{".", "..", ".bashrc", "-dash", "Zeta", "alpha", "alpha2", "ä-umlaut", "_under"}
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 25; round++ {
		shuffled := make([]Entry, len(base))
		for i, name := range base {
			shuffled[i] = Entry{Name: name}
		}
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		SortEntries(shuffled)
		got := names(shuffled)
		require.Equal(t, ".", got[0])
		require.Equal(t, "..", got[1])
		for i := 3; i < len(got); i++ {
			require.Less(t, got[i-1], got[i], "round %d: %v", round, got)
		}
	}
}

func TestCompareNames(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{".", "..", -1},
		{"..", ".", 1},
		{"..", ".a", -1},
		{".a", "..", 1},
		{"B", "a", -1},
		{"a", "a", 0},
	}
	for _, tt := range tests {
		got := CompareNames(tt.a, tt.b)
		switch {
		case tt.want < 0:
			assert.Negative(t, got, "%q vs %q", tt.a, tt.b)
		case tt.want > 0:
			assert.Positive(t, got, "%q vs %q", tt.a, tt.b)
		default:
			assert.Zero(t, got)
		}
	}
}

func TestListDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "sub"), filepath.Join(dir, "link")))

	entries, err := ListDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{".", "..", "A.txt", "b.txt", "link", "sub"}, names(entries))

	assert.True(t, entries[0].IsPseudo())
	assert.True(t, entries[1].IsDir)
	assert.False(t, entries[2].IsDir)
	assert.True(t, entries[4].IsSymlink)
	assert.True(t, entries[4].IsDir, "symlink to directory counts as directory")
	assert.True(t, entries[5].IsDir)
}

func TestListDirectoryMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	_, err := ListDirectory(missing)
	require.Error(t, err)

	var listingErr *ListingError
	require.ErrorAs(t, err, &listingErr)
	assert.Equal(t, missing, listingErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEntryHidden(t *testing.T) {
	assert.False(t, Entry{Name: "."}.IsHidden())
	assert.False(t, Entry{Name: ".."}.IsHidden())
	assert.True(t, Entry{Name: ".git"}.IsHidden())
	assert.False(t, Entry{Name: "main.go"}.IsHidden())
}

func TestResolveAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	got, err := ResolveAbsolutePath(filepath.Join(dir, "sub", ".."))
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(dir), got)
	assert.True(t, IsDirectory(got))
	assert.False(t, IsDirectory(filepath.Join(dir, "nope")))
}
