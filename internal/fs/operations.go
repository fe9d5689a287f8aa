package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned when a rename target is not a plain entry name.
var ErrInvalidName = errors.New("invalid name")

// OperationError reports a delete or rename that failed for one path.
type OperationError struct {
	Op   string
	Path string
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// RemoveOutcome is the result of removing a single path.
type RemoveOutcome struct {
	Path string
	Err  error
}

// RemoveReport lists per-path outcomes in the order they were attempted.
type RemoveReport []RemoveOutcome

// Failures returns the outcomes that carry an error.
func (r RemoveReport) Failures() []RemoveOutcome {
	var failed []RemoveOutcome
	for _, outcome := range r {
		if outcome.Err != nil {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// Err joins every failure, or returns nil when all removals succeeded.
func (r RemoveReport) Err() error {
	var errs []error
	for _, outcome := range r.Failures() {
		errs = append(errs, outcome.Err)
	}
	return errors.Join(errs...)
}

// RemoveTree removes path. Directories are removed depth-first, children
// before the directory itself. A failing path does not stop its siblings;
// symlinks are removed, never followed.
func RemoveTree(path string) RemoveReport {
	var report RemoveReport
	removeTree(path, &report)
	return report
}

func removeTree(path string, report *RemoveReport) {
	info, err := os.Lstat(path)
	if err != nil {
		*report = append(*report, RemoveOutcome{Path: path, Err: &OperationError{Op: "remove", Path: path, Err: err}})
		return
	}

	if info.IsDir() {
		children, err := os.ReadDir(path)
		if err != nil {
			*report = append(*report, RemoveOutcome{Path: path, Err: &OperationError{Op: "read", Path: path, Err: err}})
			return
		}
		for _, child := range children {
			removeTree(filepath.Join(path, child.Name()), report)
		}
	}

	outcome := RemoveOutcome{Path: path}
	if err := os.Remove(path); err != nil {
		outcome.Err = &OperationError{Op: "remove", Path: path, Err: err}
	}
	*report = append(*report, outcome)
}

// Rename renames oldName to newName inside dir. newName is used byte for
// byte; it must be a plain name and must not already exist.
func Rename(dir, oldName, newName string) error {
	oldPath := filepath.Join(dir, oldName)

	if newName == "" || IsPseudoName(newName) || strings.ContainsRune(newName, filepath.Separator) || strings.ContainsRune(newName, '/') {
		return &OperationError{Op: "rename", Path: oldPath, Err: fmt.Errorf("%w: %q", ErrInvalidName, newName)}
	}
	if IsPseudoName(oldName) {
		return &OperationError{Op: "rename", Path: oldPath, Err: fmt.Errorf("%w: %q", ErrInvalidName, oldName)}
	}
	if newName == oldName {
		return nil
	}

	newPath := filepath.Join(dir, newName)
	if _, err := os.Lstat(newPath); err == nil {
		return &OperationError{Op: "rename", Path: oldPath, Err: fmt.Errorf("%s: %w", newName, os.ErrExist)}
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return &OperationError{Op: "rename", Path: oldPath, Err: err}
	}
	return nil
}
