package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestState builds a snapshot with "." and ".." followed by names.
func newTestState(names ...string) *AppState {
	files := []FileEntry{{Name: ".", IsDir: true}, {Name: "..", IsDir: true}}
	for _, name := range names {
		files = append(files, FileEntry{Name: name})
	}
	return &AppState{
		CurrentPath:  "/test",
		Files:        files,
		ScreenWidth:  80,
		ScreenHeight: 24,
	}
}

func reduce(t *testing.T, r *StateReducer, s *AppState, actions ...Action) error {
	t.Helper()
	var last error
	for _, a := range actions {
		_, last = r.Reduce(s, a)
	}
	return last
}

func fileNames(s *AppState) []string {
	out := make([]string, len(s.Files))
	for i, f := range s.Files {
		out[i] = f.Name
	}
	return out
}

// newDiskState creates files (and directories for names ending in "/")
// under a temp dir and loads it.
func newDiskState(t *testing.T, paths ...string) *AppState {
	t.Helper()
	dir := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(dir, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(p), 0o644))
	}
	s := &AppState{ScreenWidth: 80, ScreenHeight: 24}
	require.NoError(t, LoadDirectory(s, dir))
	return s
}
