package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	statepkg "github.com/kk-code-lab/fex/internal/state"
)

// formatPosition describes the cursor position, marks and the entry under
// the cursor for an idle status line.
func formatPosition(state *statepkg.AppState, showSize bool) string {
	if len(state.Files) == 0 {
		return "empty"
	}
	parts := []string{fmt.Sprintf("%d/%d", state.SelectedIndex+1, len(state.Files))}
	if n := state.MarkedCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d marked", n))
	}
	if state.SearchQuery != "" {
		parts = append(parts, "/"+state.SearchQuery)
	}
	if file := state.CurrentFile(); showSize && file != nil && !file.IsPseudo() {
		parts = append(parts, formatEntryDetails(*file))
	}
	return strings.Join(parts, " · ")
}

func formatEntryDetails(entry statepkg.FileEntry) string {
	var details []string
	if entry.Mode != 0 {
		details = append(details, entry.Mode.String())
	}
	if !entry.IsDir {
		details = append(details, humanize.IBytes(uint64(max(entry.Size, 0))))
	}
	if !entry.Modified.IsZero() {
		details = append(details, humanize.Time(entry.Modified))
	}
	return strings.Join(details, " ")
}
