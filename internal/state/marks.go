package state

// IsMarked reports whether the entry at idx is marked.
func (s *AppState) IsMarked(idx int) bool {
	if idx < 0 || idx >= len(s.Files) || s.Marks == nil {
		return false
	}
	_, ok := s.Marks[s.Files[idx].Name]
	return ok
}

// MarkedIndices translates marked names into ascending snapshot positions.
// Pseudo-entries are never reported.
func (s *AppState) MarkedIndices() []int {
	if len(s.Marks) == 0 {
		return nil
	}
	indices := make([]int, 0, len(s.Marks))
	for i, f := range s.Files {
		if f.IsPseudo() {
			continue
		}
		if _, ok := s.Marks[f.Name]; ok {
			indices = append(indices, i)
		}
	}
	return indices
}

// MarkedCount returns the number of marked entries present in the snapshot.
func (s *AppState) MarkedCount() int {
	return len(s.MarkedIndices())
}

func (s *AppState) mark(idx int) {
	if idx < 0 || idx >= len(s.Files) || s.Files[idx].IsPseudo() {
		return
	}
	if s.Marks == nil {
		s.Marks = make(map[string]struct{})
	}
	s.Marks[s.Files[idx].Name] = struct{}{}
}

func (s *AppState) unmark(idx int) {
	if idx < 0 || idx >= len(s.Files) || s.Marks == nil {
		return
	}
	delete(s.Marks, s.Files[idx].Name)
}

func (s *AppState) markAll() {
	for i := range s.Files {
		s.mark(i)
	}
}

func (s *AppState) clearMarks() {
	s.Marks = nil
}

func (s *AppState) allMarked() bool {
	for i, f := range s.Files {
		if !f.IsPseudo() && !s.IsMarked(i) {
			return false
		}
	}
	return true
}

// pruneMarks drops marks whose entry is no longer in the snapshot.
func (s *AppState) pruneMarks() {
	if len(s.Marks) == 0 {
		return
	}
	present := make(map[string]struct{}, len(s.Files))
	for _, f := range s.Files {
		present[f.Name] = struct{}{}
	}
	for name := range s.Marks {
		if _, ok := present[name]; !ok {
			delete(s.Marks, name)
		}
	}
}

// applyMark handles m/u/space. At index 0 the command applies to every
// regular entry and the cursor stays; on ".." it does nothing; otherwise it
// changes the cursor entry and advances.
func (s *AppState) applyMark(op func(idx int)) {
	if len(s.Files) == 0 {
		return
	}
	idx := s.SelectedIndex
	if s.Files[idx].IsPseudo() {
		return
	}
	op(idx)
	s.MoveBy(1)
}
