package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/fex/internal/state"
	textutil "github.com/kk-code-lab/fex/internal/textutil"
)

const ellipsis = "…"

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme

	// ShowSize adds mode, size and age of the cursor entry to the idle
	// status line.
	ShowSize bool
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:   screen,
		theme:    GetColorTheme(),
		ShowSize: true,
	}
}

// Render draws the entire UI based on state: the path header on the first
// row, the visible window of the snapshot, and the status line on the last
// row.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	r.screen.HideCursor()

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 || state == nil {
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawFileList(state, w, h)
	if state.Mode == statepkg.ModeAwaitingConfirmation {
		r.drawPendingOverlay(state, w, h)
	}
	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

// drawHeader renders the top bar with the absolute path of the listing.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)

	endX := r.drawTextLine(0, 0, w, "fex ", style)
	path := textutil.SanitizeName(state.CurrentPath)
	path = textutil.TruncateLeft(path, w-endX, ellipsis)
	endX = r.drawTextLine(endX, 0, w-endX, path, style.Bold(true))
	r.fillLine(endX, w, 0, style)
}

// drawFileList renders the rows of the snapshot between ScrollOffset and the
// bottom of the viewport.
func (r *Renderer) drawFileList(state *statepkg.AppState, w, h int) {
	listStartY := 1
	bottomLimit := h - 1
	baseStyle := tcell.StyleDefault

	y := listStartY
	for idx := state.ScrollOffset; idx < len(state.Files) && y < bottomLimit; idx++ {
		f := state.Files[idx]
		isSelected := idx == state.SelectedIndex
		isMarked := state.IsMarked(idx)

		rowStyle := r.rowStyle(f, isSelected, isMarked, baseStyle)

		marker := " "
		if isMarked {
			marker = "*"
		}
		// Icon: @ for symlinks, / for directories, space for files
		icon := " "
		if f.IsSymlink {
			icon = "@"
		} else if f.IsDir {
			icon = "/"
		}

		prefix := fmt.Sprintf("%s%s ", marker, icon)
		nameWidth := w - textutil.DisplayWidth(prefix)
		name := textutil.Truncate(textutil.SanitizeName(f.Name), nameWidth, ellipsis)

		endX := r.drawTextLine(0, y, w, prefix+name, rowStyle)
		r.fillLine(endX, w, y, rowStyle)
		y++
	}

	for ; y < bottomLimit; y++ {
		r.fillLine(0, w, y, baseStyle)
	}
}

func (r *Renderer) rowStyle(f statepkg.FileEntry, isSelected, isMarked bool, base tcell.Style) tcell.Style {
	if isSelected {
		style := tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		if isMarked {
			style = style.Bold(true)
		}
		return style
	}

	var style tcell.Style
	switch {
	case isMarked:
		return base.Foreground(r.theme.MarkedFg).Bold(true)
	case f.IsSymlink:
		style = base.Foreground(r.theme.SymlinkFg)
	case f.IsDir:
		style = base.Foreground(r.theme.DirectoryFg)
	default:
		style = base.Foreground(r.theme.FileFg)
	}
	if f.IsHidden() {
		style = style.Foreground(r.theme.HiddenFg)
	}
	return style
}

// drawStatusLine renders the last row: an open prompt, a pending question,
// the last error or status message, or else the cursor position.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 1
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	switch {
	case state.Mode == statepkg.ModeAwaitingTextInput && state.Prompt != nil:
		r.drawPrompt(state.Prompt, y, w, style.Foreground(r.theme.PromptFg))
		return
	case state.Mode == statepkg.ModeAwaitingConfirmation:
		r.drawStatusText(textutil.SanitizeName(state.PendingSummary()), y, w, style.Foreground(r.theme.WarningFg).Bold(true))
		return
	case state.LastError != nil:
		r.drawStatusText(textutil.SanitizeName("error: "+state.LastError.Error()), y, w, style.Foreground(r.theme.ErrorFg))
		return
	case state.Status.Text != "":
		msgStyle := style
		if state.Status.Kind == statepkg.StatusWarning {
			msgStyle = style.Foreground(r.theme.WarningFg)
		}
		r.drawStatusText(textutil.SanitizeName(state.Status.Text), y, w, msgStyle)
		return
	}

	left := " " + textutil.SanitizeName(formatPosition(state, r.ShowSize))
	endX := r.drawTextLine(0, y, w, textutil.Truncate(left, w, ellipsis), style)

	help := buildFooterHelpText(state)
	helpWidth := textutil.DisplayWidth(help) + 1
	if help != "" && endX+2+helpWidth <= w {
		r.fillLine(endX, w-helpWidth, y, style)
		endX = r.drawTextLine(w-helpWidth, y, helpWidth, help, style.Dim(true))
	}
	r.fillLine(endX, w, y, style)
}

func (r *Renderer) drawStatusText(text string, y, w int, style tcell.Style) {
	endX := r.drawTextLine(0, y, w, textutil.Truncate(text, w, ellipsis), style)
	r.fillLine(endX, w, y, style)
}

// drawPrompt renders label and buffer, scrolled so the cursor stays visible,
// and places the terminal cursor.
func (r *Renderer) drawPrompt(p *statepkg.Prompt, y, w int, style tcell.Style) {
	label := textutil.SanitizeName(p.Label)
	before := textutil.SanitizeName(string(p.Buffer[:p.Cursor]))
	after := textutil.SanitizeName(string(p.Buffer[p.Cursor:]))

	text := label + before
	for textutil.DisplayWidth(text) >= w && text != "" {
		_, size := utf8.DecodeRuneInString(text)
		text = text[size:]
	}
	cursorX := textutil.DisplayWidth(text)
	text += after

	endX := r.drawTextLine(0, y, w, text, style)
	r.fillLine(endX, w, y, style)
	r.screen.ShowCursor(cursorX, y)
}

// drawPendingOverlay lists every pending target above the status line when
// more than one entry is about to be deleted.
func (r *Renderer) drawPendingOverlay(state *statepkg.AppState, w, h int) {
	if len(state.Pending) < 2 {
		return
	}
	maxRows := h - 2
	if maxRows <= 0 {
		return
	}

	lines := make([]string, 0, len(state.Pending))
	for _, target := range state.Pending {
		lines = append(lines, "  "+textutil.SanitizeName(target.Path))
	}
	if len(lines) > maxRows {
		hidden := len(lines) - maxRows + 1
		lines = append(lines[:maxRows-1], fmt.Sprintf("  … and %d more", hidden))
	}

	style := tcell.StyleDefault.Reverse(true)
	y := h - 1 - len(lines)
	for _, line := range lines {
		endX := r.drawTextLine(0, y, w, textutil.Truncate(line, w, ellipsis), style)
		r.fillLine(endX, w, y, style)
		y++
	}
}
