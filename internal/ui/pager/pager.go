package pager

import (
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/fex/internal/fs"
	textutil "github.com/kk-code-lab/fex/internal/textutil"
)

const horizontalStep = 8

// FilePager shows a text file read-only on the browser's screen until the
// user closes it.
type FilePager struct {
	screen    tcell.Screen
	path      string
	lines     []string
	truncated bool
	offset    int
	column    int
	width     int
	height    int
}

// NewFilePager loads path for viewing. Binary and unreadable files are
// rejected before the screen is touched.
func NewFilePager(screen tcell.Screen, path string) (*FilePager, error) {
	lines, truncated, err := fsutil.ReadLines(path)
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		lines[i] = textutil.ExpandTabs(textutil.SanitizeLine(line), textutil.DefaultTabWidth)
	}
	p := &FilePager{
		screen:    screen,
		path:      path,
		lines:     lines,
		truncated: truncated,
	}
	p.updateSize()
	return p, nil
}

// Run draws the file and consumes events until the pager is closed. It
// returns nil when the screen stops delivering events.
func (p *FilePager) Run() error {
	for {
		p.render()

		ev := p.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if done := p.HandleEvent(ev); done {
			return nil
		}
	}
}

// HandleEvent applies one event and reports whether the pager should close.
func (p *FilePager) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
		p.updateSize()
	case *tcell.EventKey:
		return p.handleKey(ev)
	}
	p.clampScroll()
	return false
}

func (p *FilePager) handleKey(ev *tcell.EventKey) bool {
	page := p.contentRows()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp, tcell.KeyCtrlP:
		p.offset--
	case tcell.KeyDown, tcell.KeyCtrlN, tcell.KeyEnter:
		p.offset++
	case tcell.KeyPgUp:
		p.offset -= page
	case tcell.KeyPgDn:
		p.offset += page
	case tcell.KeyHome:
		p.offset = 0
	case tcell.KeyEnd:
		p.offset = len(p.lines)
	case tcell.KeyLeft:
		p.column -= horizontalStep
	case tcell.KeyRight:
		p.column += horizontalStep
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'j':
			p.offset++
		case 'k':
			p.offset--
		case ' ', 'f':
			p.offset += page
		case 'b':
			p.offset -= page
		case 'g':
			p.offset = 0
		case 'G':
			p.offset = len(p.lines)
		case 'h':
			p.column -= horizontalStep
		case 'l':
			p.column += horizontalStep
		}
	}

	p.clampScroll()
	return false
}

func (p *FilePager) updateSize() {
	p.width, p.height = p.screen.Size()
}

func (p *FilePager) contentRows() int {
	return max(p.height-2, 1)
}

func (p *FilePager) clampScroll() {
	maxOffset := max(len(p.lines)-p.contentRows(), 0)
	p.offset = min(max(p.offset, 0), maxOffset)
	p.column = max(p.column, 0)
}

func (p *FilePager) render() {
	p.screen.Clear()
	p.screen.HideCursor()
	if p.width <= 0 || p.height <= 0 {
		p.screen.Show()
		return
	}

	header := textutil.TruncateLeft(textutil.SanitizeName(p.path), p.width, "…")
	p.drawRow(0, header, tcell.StyleDefault.Bold(true))

	rows := p.contentRows()
	for i := 0; i < rows && p.offset+i < len(p.lines); i++ {
		p.drawRow(1+i, p.visiblePart(p.lines[p.offset+i]), tcell.StyleDefault)
	}

	p.drawRow(p.height-1, p.statusLine(), tcell.StyleDefault.Reverse(true))
	p.screen.Show()
}

// visiblePart drops the first column cells of line and clips it to the
// screen width.
func (p *FilePager) visiblePart(line string) string {
	skipped := 0
	for i, ru := range line {
		if skipped >= p.column {
			return textutil.Truncate(line[i:], p.width, "")
		}
		skipped += max(textutil.DisplayWidth(string(ru)), 1)
	}
	return ""
}

func (p *FilePager) drawRow(y int, text string, style tcell.Style) {
	x := 0
	for _, ru := range text {
		w := max(textutil.DisplayWidth(string(ru)), 1)
		if x+w > p.width {
			break
		}
		p.screen.SetContent(x, y, ru, nil, style)
		x += w
	}
	for ; x < p.width; x++ {
		p.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (p *FilePager) statusLine() string {
	total := len(p.lines)
	start, end := 0, 0
	if total > 0 {
		start = p.offset + 1
		end = min(p.offset+p.contentRows(), total)
	}
	status := fmt.Sprintf("%s  %d-%d/%d lines", filepath.Base(p.path), start, end, total)
	if p.truncated {
		status += fmt.Sprintf("  (first %d MiB)", fsutil.MaxViewBytes>>20)
	}
	return status + "  q: back"
}
