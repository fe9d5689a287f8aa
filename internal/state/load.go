package state

import (
	fsutil "github.com/kk-code-lab/fex/internal/fs"
)

// LoadDirectory replaces the snapshot with dirPath's listing and resets the
// session for a new directory: cursor 0, no marks, no search query. On error
// the previous snapshot is kept.
func LoadDirectory(state *AppState, dirPath string) error {
	absPath, err := fsutil.ResolveAbsolutePath(dirPath)
	if err != nil {
		return err
	}

	entries, err := fsutil.ListDirectory(absPath)
	if err != nil {
		return err
	}

	state.CurrentPath = absPath
	state.Files = entries
	state.resetViewport()
	state.clearMarks()
	state.clearSearch()
	return nil
}

// refreshDirectory re-reads CurrentPath in place. The cursor is re-clamped
// rather than reset and marks on vanished entries are dropped.
func refreshDirectory(state *AppState) error {
	entries, err := fsutil.ListDirectory(state.CurrentPath)
	if err != nil {
		return err
	}

	state.Files = entries
	state.clampCursor()
	state.pruneMarks()
	return nil
}
