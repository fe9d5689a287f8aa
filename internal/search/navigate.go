package search

// Forward returns the smallest index in (from, count) whose name matches.
// It never wraps around.
func Forward(m Matcher, count int, nameAt func(int) string, from int) (int, bool) {
	if m == nil {
		return from, false
	}
	start := from + 1
	if start < 0 {
		start = 0
	}
	for i := start; i < count; i++ {
		if m.Match(nameAt(i)) {
			return i, true
		}
	}
	return from, false
}

// Backward returns the largest index in [1, from) whose name matches.
// Index 0 is never evaluated.
func Backward(m Matcher, count int, nameAt func(int) string, from int) (int, bool) {
	if m == nil {
		return from, false
	}
	start := from - 1
	if start >= count {
		start = count - 1
	}
	for i := start; i >= 1; i-- {
		if m.Match(nameAt(i)) {
			return i, true
		}
	}
	return from, false
}
