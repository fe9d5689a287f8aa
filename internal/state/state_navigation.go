package state

// ViewportHeight is the number of list rows: screen rows minus the header
// and status lines.
func (s *AppState) ViewportHeight() int {
	h := s.ScreenHeight - 2
	if h < 1 {
		h = 1
	}
	return h
}

// MoveBy moves the cursor by delta, clamped to the snapshot. No wraparound.
func (s *AppState) MoveBy(delta int) {
	if len(s.Files) == 0 {
		return
	}
	s.SelectedIndex = clamp(s.SelectedIndex+delta, 0, len(s.Files)-1)
}

// RecomputeViewport scrolls so the cursor is visible and the window never
// extends past the end of the snapshot.
func (s *AppState) RecomputeViewport() {
	n := len(s.Files)
	if n == 0 {
		s.SelectedIndex = 0
		s.ScrollOffset = 0
		return
	}
	s.SelectedIndex = clamp(s.SelectedIndex, 0, n-1)

	height := s.ViewportHeight()
	if s.SelectedIndex >= s.ScrollOffset+height {
		s.ScrollOffset = s.SelectedIndex - height + 1
	}
	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	}

	if n <= height {
		s.ScrollOffset = 0
		return
	}
	if s.ScrollOffset+height > n {
		s.ScrollOffset = n - height
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

// VisibleRange returns the half-open snapshot range currently on screen.
func (s *AppState) VisibleRange() (start, end int) {
	start = s.ScrollOffset
	end = start + s.ViewportHeight()
	if end > len(s.Files) {
		end = len(s.Files)
	}
	if start > end {
		start = end
	}
	return start, end
}

func (s *AppState) clampCursor() {
	if len(s.Files) == 0 {
		s.SelectedIndex = 0
		return
	}
	s.SelectedIndex = clamp(s.SelectedIndex, 0, len(s.Files)-1)
}

func (s *AppState) resetViewport() {
	s.SelectedIndex = 0
	s.ScrollOffset = 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
