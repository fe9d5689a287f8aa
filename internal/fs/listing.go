package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ListingError reports a directory that could not be read.
type ListingError struct {
	Path string
	Err  error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Path, e.Err)
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

// ListDirectory reads dirPath and returns its entries in display order,
// with "." and ".." prepended.
func ListDirectory(dirPath string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, &ListingError{Path: dirPath, Err: err}
	}

	entries := make([]Entry, 0, len(dirEntries)+2)
	entries = append(entries, pseudoEntry(SelfName, dirPath), pseudoEntry(ParentName, filepath.Dir(dirPath)))

	for _, e := range dirEntries {
		info, err := e.Info()
		if err != nil {
			// Vanished between ReadDir and Lstat.
			continue
		}

		fullPath := filepath.Join(dirPath, e.Name())
		isDir := e.IsDir()
		isSymlink := info.Mode()&os.ModeSymlink != 0

		// For symlinks, check if target is a directory
		if isSymlink {
			if targetInfo, err := os.Stat(fullPath); err == nil {
				isDir = targetInfo.IsDir()
			}
		}

		entries = append(entries, Entry{
			Name:      e.Name(),
			IsDir:     isDir,
			IsSymlink: isSymlink,
			Size:      info.Size(),
			Modified:  info.ModTime(),
			Mode:      info.Mode(),
		})
	}

	SortEntries(entries)
	return entries, nil
}

func pseudoEntry(name, target string) Entry {
	entry := Entry{Name: name, IsDir: true}
	if info, err := os.Stat(target); err == nil {
		entry.Modified = info.ModTime()
		entry.Mode = info.Mode()
	}
	return entry
}

// SortEntries orders entries in place: "." first, ".." second, then
// byte-wise ascending by name.
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return CompareNames(a.Name, b.Name)
	})
}

// CompareNames is the total order used for listings.
func CompareNames(a, b string) int {
	if ra, rb := pseudoRank(a), pseudoRank(b); ra != rb {
		return ra - rb
	}
	return strings.Compare(a, b)
}

func pseudoRank(name string) int {
	switch name {
	case SelfName:
		return 0
	case ParentName:
		return 1
	default:
		return 2
	}
}

// IsDirectory reports whether path resolves to a directory.
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ResolveAbsolutePath returns a cleaned absolute form of path.
func ResolveAbsolutePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", path, err)
	}
	return filepath.Clean(abs), nil
}
