package fs

import (
	"os"
	"time"
)

const (
	// SelfName is the pseudo-entry for the listed directory itself.
	SelfName = "."
	// ParentName is the pseudo-entry for the parent directory.
	ParentName = ".."
)

// Entry represents a single file or directory on disk.
type Entry struct {
	Name      string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
	Mode      os.FileMode
}

// IsPseudo reports whether the entry is "." or "..".
func (e Entry) IsPseudo() bool {
	return IsPseudoName(e.Name)
}

// IsHidden reports whether the entry is a dotfile. Pseudo-entries are not hidden.
func (e Entry) IsHidden() bool {
	return !e.IsPseudo() && len(e.Name) > 0 && e.Name[0] == '.'
}

// IsPseudoName reports whether name is "." or "..".
func IsPseudoName(name string) bool {
	return name == SelfName || name == ParentName
}
