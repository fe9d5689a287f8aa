package textutil

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SanitizeName makes a file name safe to draw on a single terminal row.
// The name is composed to NFC, control characters become '?', and
// invisible formatting runes (bidi overrides, zero-width joiners, BOM) are
// spelled out as <U+XXXX> so a name cannot disguise itself or inject
// escape sequences.
func SanitizeName(name string) string {
	name = norm.NFC.String(name)
	for _, r := range name {
		if needsEscape(r) {
			return escape(name, '?')
		}
	}
	return name
}

// SanitizeLine is SanitizeName for file content: tabs survive for
// ExpandTabs to handle.
func SanitizeLine(line string) string {
	for _, r := range line {
		if r != '\t' && needsEscape(r) {
			return escape(line, '\t')
		}
	}
	return line
}

func needsEscape(r rune) bool {
	return r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) || unicode.Is(unicode.Cf, r)
}

func escape(text string, keep rune) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == keep:
			b.WriteRune(r)
		case unicode.Is(unicode.Cf, r):
			fmt.Fprintf(&b, "<U+%04X>", r)
		case needsEscape(r):
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
