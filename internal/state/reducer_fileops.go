package state

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	fsutil "github.com/kk-code-lab/fex/internal/fs"
	"github.com/sirupsen/logrus"
)

// ===== NAVIGATE =====

func (r *StateReducer) open(state *AppState) error {
	file := state.CurrentFile()
	if file == nil {
		return nil
	}
	if file.Name == fsutil.ParentName {
		return r.goUp(state)
	}

	// Entries can change type after the snapshot was taken.
	target := state.CurrentFilePath()
	if file.IsDir || fsutil.IsDirectory(target) {
		return r.changeDirectory(state, target)
	}

	state.ViewingPath = target
	state.Mode = ModeViewingFile
	return nil
}

func (r *StateReducer) goUp(state *AppState) error {
	parent := filepath.Dir(state.CurrentPath)
	cameFrom := filepath.Base(state.CurrentPath)
	atRoot := parent == state.CurrentPath

	if err := r.changeDirectory(state, parent); err != nil {
		return err
	}

	// Select the directory we just came from
	if !atRoot {
		if idx := state.IndexOf(cameFrom); idx >= 0 {
			state.SelectedIndex = idx
		}
	}
	return nil
}

func (r *StateReducer) changeDirectory(state *AppState, path string) error {
	if err := LoadDirectory(state, path); err != nil {
		r.log.WithFields(logrus.Fields{"path": path}).WithError(err).Warn("directory load failed")
		return err
	}
	r.log.WithFields(logrus.Fields{"path": state.CurrentPath, "count": len(state.Files)}).Debug("directory loaded")
	return nil
}

func (r *StateReducer) refresh(state *AppState) error {
	if err := refreshDirectory(state); err != nil {
		r.log.WithFields(logrus.Fields{"path": state.CurrentPath}).WithError(err).Warn("directory refresh failed")
		return err
	}
	return nil
}

// ===== DELETE =====

// deleteTargets resolves marked entries, or the cursor entry when nothing
// is marked. Pseudo-entries are never targets.
func (s *AppState) deleteTargets() []DeleteTarget {
	indices := s.MarkedIndices()
	if len(indices) == 0 {
		if file := s.CurrentFile(); file != nil && !file.IsPseudo() {
			indices = []int{s.SelectedIndex}
		}
	}

	targets := make([]DeleteTarget, 0, len(indices))
	for _, idx := range indices {
		targets = append(targets, DeleteTarget{
			Index: idx,
			Name:  s.Files[idx].Name,
			Path:  s.EntryPath(idx),
		})
	}
	return targets
}

func (r *StateReducer) startDelete(state *AppState) {
	targets := state.deleteTargets()
	if len(targets) == 0 {
		return
	}
	state.Pending = targets
	state.Mode = ModeAwaitingConfirmation
}

// finishDelete removes every pending target when confirmed, then refreshes
// the snapshot whatever the answer was.
func (r *StateReducer) finishDelete(state *AppState, confirmed bool) error {
	targets := state.Pending
	state.Pending = nil
	state.Mode = ModeBrowsing

	var errs []error
	removed := 0
	if confirmed {
		for _, target := range targets {
			report := fsutil.RemoveTree(target.Path)
			for _, outcome := range report {
				fields := logrus.Fields{"op": "delete", "path": outcome.Path}
				if outcome.Err != nil {
					r.log.WithFields(fields).WithError(outcome.Err).Warn("remove failed")
					continue
				}
				r.log.WithFields(fields).Info("removed")
			}
			if err := report.Err(); err != nil {
				errs = append(errs, err)
				continue
			}
			removed++
		}
	}

	refreshErr := r.refresh(state)

	switch {
	case !confirmed:
		state.setStatus(StatusInfo, "delete cancelled")
	case len(errs) > 0:
		return errors.Join(fmt.Errorf("deleted %d of %d: %w", removed, len(targets), errors.Join(errs...)), refreshErr)
	default:
		state.setStatus(StatusInfo, fmt.Sprintf("deleted %d %s", removed, plural(removed, "entry", "entries")))
	}
	return refreshErr
}

// ===== RENAME =====

func (r *StateReducer) startRename(state *AppState) {
	file := state.CurrentFile()
	if file == nil || file.IsPseudo() {
		return
	}
	p := newPrompt(PromptRename, "rename: ", file.Name)
	p.Target = file.Name
	state.Prompt = p
	state.Mode = ModeAwaitingTextInput
}

func (r *StateReducer) submitRename(state *AppState, oldName, newName string) error {
	if newName == "" || newName == oldName {
		state.setStatus(StatusInfo, "rename cancelled")
		return nil
	}

	fields := logrus.Fields{"op": "rename", "path": filepath.Join(state.CurrentPath, oldName), "to": newName}
	if err := fsutil.Rename(state.CurrentPath, oldName, newName); err != nil {
		r.log.WithFields(fields).WithError(err).Warn("rename failed")
		return err
	}
	r.log.WithFields(fields).Info("renamed")

	_, wasMarked := state.Marks[oldName]
	if err := r.refresh(state); err != nil {
		return err
	}

	// Follow the renamed entry; identity moves with it.
	if idx := state.IndexOf(newName); idx >= 0 {
		state.SelectedIndex = idx
		if wasMarked {
			state.mark(idx)
		}
	}
	state.setStatus(StatusInfo, fmt.Sprintf("renamed %s → %s", oldName, newName))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// PendingSummary describes the pending delete for the confirmation prompt.
func (s *AppState) PendingSummary() string {
	if len(s.Pending) == 0 {
		return ""
	}
	if len(s.Pending) == 1 {
		return fmt.Sprintf("delete %s? (y/n)", s.Pending[0].Path)
	}
	paths := make([]string, 0, len(s.Pending))
	for _, t := range s.Pending {
		paths = append(paths, t.Path)
	}
	return fmt.Sprintf("delete %d entries (%s)? (y/n)", len(s.Pending), strings.Join(paths, ", "))
}
