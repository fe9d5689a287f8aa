package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/fex/internal/state"
)

// buildFooterHelpText returns the key hints shown at the right of an idle
// status line.
func buildFooterHelpText(state *statepkg.AppState) string {
	if state == nil || state.Mode != statepkg.ModeBrowsing {
		return ""
	}
	segments := []string{"/: search", "m/u: mark", "d: delete", "C-x r: rename", "q: quit"}
	if state.MarkedCount() > 0 {
		segments = []string{"d: delete marked", "u: unmark", "q: quit"}
	}
	return strings.Join(segments, "  ")
}
