package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/fex/internal/fs"
	"github.com/kk-code-lab/fex/internal/search"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Mode is the input state of the session.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeAwaitingPrefix
	ModeAwaitingConfirmation
	ModeAwaitingTextInput
	ModeViewingFile
	ModeDone
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeAwaitingPrefix:
		return "awaiting-prefix"
	case ModeAwaitingConfirmation:
		return "awaiting-confirmation"
	case ModeAwaitingTextInput:
		return "awaiting-text-input"
	case ModeViewingFile:
		return "viewing-file"
	case ModeDone:
		return "done"
	default:
		return "unknown"
	}
}

// StatusKind distinguishes informational status text from errors.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusWarning
)

// StatusMessage is a transient message for the status line. It is cleared
// by the next input.
type StatusMessage struct {
	Text string
	Kind StatusKind
}

// DeleteTarget is one entry awaiting delete confirmation.
type DeleteTarget struct {
	Index int
	Name  string
	Path  string
}

// ===== STATE DEFINITIONS =====

// AppState is the single source of truth for one browsing session.
type AppState struct {
	// Navigation & filesystem
	CurrentPath string
	Files       []FileEntry // Snapshot of CurrentPath, "." and ".." first

	// Selection & viewport
	SelectedIndex int
	ScrollOffset  int

	// Marks are keyed by entry name; positions are derived on demand.
	Marks map[string]struct{}

	// Search
	SearchQuery   string
	searchMatcher search.Matcher

	// Modal state
	Mode        Mode
	Pending     []DeleteTarget
	Prompt      *Prompt
	ViewingPath string

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Status line
	Status    StatusMessage
	LastError error
}

// ===== HELPER METHODS =====

// CurrentFile returns the entry under the cursor, or nil for an empty snapshot.
func (s *AppState) CurrentFile() *FileEntry {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Files) {
		return nil
	}
	return &s.Files[s.SelectedIndex]
}

// EntryPath derives the path of the entry at idx.
func (s *AppState) EntryPath(idx int) string {
	if idx < 0 || idx >= len(s.Files) {
		return s.CurrentPath
	}
	return filepath.Join(s.CurrentPath, s.Files[idx].Name)
}

// CurrentFilePath returns the path of the entry under the cursor.
func (s *AppState) CurrentFilePath() string {
	return s.EntryPath(s.SelectedIndex)
}

// IndexOf returns the snapshot position of name, or -1.
func (s *AppState) IndexOf(name string) int {
	for i, f := range s.Files {
		if f.Name == name {
			return i
		}
	}
	return -1
}

func (s *AppState) setStatus(kind StatusKind, text string) {
	s.Status = StatusMessage{Text: text, Kind: kind}
}

func (s *AppState) clearStatus() {
	s.Status = StatusMessage{}
	s.LastError = nil
}

func (s *AppState) clearSearch() {
	s.SearchQuery = ""
	s.searchMatcher = nil
}
