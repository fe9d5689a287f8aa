package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 8

// ExpandTabs replaces tab characters with spaces respecting terminal column width.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := 0
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteRune(ru)
		column += runeWidth(ru)
	}
	return builder.String()
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate cuts text to at most width columns, ending with tail when
// anything was dropped.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, tail)
}

// TruncateLeft cuts text from the left so its tail fits in width columns,
// starting with head when anything was dropped.
func TruncateLeft(text string, width int, head string) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	headWidth := runewidth.StringWidth(head)
	if width <= headWidth {
		return runewidth.Truncate(head, width, "")
	}

	runes := []rune(text)
	start := len(runes)
	used := 0
	for start > 0 {
		rw := runewidth.RuneWidth(runes[start-1])
		if used+rw > width-headWidth {
			break
		}
		used += rw
		start--
	}
	return head + string(runes[start:])
}

func runeWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}
