package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/fex/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(cell.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func cellStyle(screen tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := screen.GetContents()
	return cells[y*w+x].Style
}

func sampleState(names ...string) *statepkg.AppState {
	files := []statepkg.FileEntry{{Name: ".", IsDir: true}, {Name: "..", IsDir: true}}
	for _, name := range names {
		files = append(files, statepkg.FileEntry{Name: name, IsDir: strings.HasSuffix(name, "dir")})
	}
	return &statepkg.AppState{
		CurrentPath:  "/home/user/work",
		Files:        files,
		Marks:        map[string]struct{}{},
		ScreenWidth:  40,
		ScreenHeight: 8,
	}
}

func TestRenderLayout(t *testing.T) {
	screen := newSimScreen(t, 40, 8)
	state := sampleState("alpha", "bdir", "gamma")
	state.SelectedIndex = 2

	r := NewRenderer(screen)
	r.ShowSize = false
	r.Render(state)

	assert.Equal(t, "fex /home/user/work", rowText(screen, 0))
	assert.Equal(t, " / .", rowText(screen, 1))
	assert.Equal(t, " / ..", rowText(screen, 2))
	assert.Equal(t, "   alpha", rowText(screen, 3))
	assert.Equal(t, " / bdir", rowText(screen, 4))
	assert.Equal(t, "", rowText(screen, 6))
	assert.True(t, strings.HasPrefix(rowText(screen, 7), " 3/5"))

	_, bg, _ := cellStyle(screen, 0, 3).Decompose()
	assert.Equal(t, GetColorTheme().SelectionBg, bg, "cursor row is highlighted")
}

func TestRenderHonoursScrollOffset(t *testing.T) {
	screen := newSimScreen(t, 30, 5)
	state := sampleState("a", "b", "c", "d", "e")
	state.ScreenHeight = 5
	state.SelectedIndex = 6
	state.ScrollOffset = 4

	NewRenderer(screen).Render(state)

	assert.Equal(t, "   c", rowText(screen, 1))
	assert.Equal(t, "   d", rowText(screen, 2))
	assert.Equal(t, "   e", rowText(screen, 3))
}

func TestRenderMarkedEntries(t *testing.T) {
	screen := newSimScreen(t, 30, 6)
	state := sampleState("a", "b")
	state.Marks["b"] = struct{}{}

	NewRenderer(screen).Render(state)

	assert.Equal(t, "*  b", rowText(screen, 4))
	fg, _, _ := cellStyle(screen, 3, 4).Decompose()
	assert.Equal(t, GetColorTheme().MarkedFg, fg)
	assert.Contains(t, rowText(screen, 5), "1 marked")
}

func TestRenderSanitizesNames(t *testing.T) {
	screen := newSimScreen(t, 40, 5)
	state := sampleState("bad\x1b[2Jname")

	NewRenderer(screen).Render(state)

	assert.Equal(t, "   bad?[2Jname", rowText(screen, 3))
}

func TestRenderTruncatesLongNames(t *testing.T) {
	screen := newSimScreen(t, 12, 5)
	state := sampleState("averyveryverylongname")

	NewRenderer(screen).Render(state)

	row := rowText(screen, 3)
	assert.Equal(t, "   averyver…", row)
}

func TestRenderPrompt(t *testing.T) {
	screen := newSimScreen(t, 30, 5)
	state := sampleState("a")
	reducer := statepkg.NewStateReducer(statepkg.Options{})
	for _, a := range []statepkg.Action{statepkg.SearchStartAction{}, statepkg.PromptCharAction{Char: 'a'}, statepkg.PromptCharAction{Char: 'b'}} {
		_, err := reducer.Reduce(state, a)
		require.NoError(t, err)
	}

	NewRenderer(screen).Render(state)

	assert.Equal(t, "/ab", rowText(screen, 4))
	x, y, visible := screen.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)
}

func TestRenderConfirmation(t *testing.T) {
	screen := newSimScreen(t, 70, 8)
	state := sampleState("a", "b", "c")
	state.Mode = statepkg.ModeAwaitingConfirmation
	state.Pending = []statepkg.DeleteTarget{
		{Index: 2, Name: "a", Path: "/home/user/work/a"},
		{Index: 4, Name: "c", Path: "/home/user/work/c"},
	}

	NewRenderer(screen).Render(state)

	assert.Equal(t, "delete 2 entries (/home/user/work/a, /home/user/work/c)? (y/n)", rowText(screen, 7))
	assert.Equal(t, "  /home/user/work/a", rowText(screen, 5))
	assert.Equal(t, "  /home/user/work/c", rowText(screen, 6))
}

func TestRenderErrorAndStatus(t *testing.T) {
	screen := newSimScreen(t, 40, 5)
	state := sampleState("a")
	state.LastError = errors.New("permission denied")

	r := NewRenderer(screen)
	r.Render(state)
	assert.Equal(t, "error: permission denied", rowText(screen, 4))
	fg, _, _ := cellStyle(screen, 0, 4).Decompose()
	assert.Equal(t, GetColorTheme().ErrorFg, fg)

	state.LastError = nil
	state.Status = statepkg.StatusMessage{Text: "pattern not found: x", Kind: statepkg.StatusWarning}
	r.Render(state)
	assert.Equal(t, "pattern not found: x", rowText(screen, 4))
}

func TestRenderLongPathKeepsTail(t *testing.T) {
	screen := newSimScreen(t, 20, 4)
	state := sampleState()
	state.CurrentPath = "/very/long/path/to/the/project"

	NewRenderer(screen).Render(state)

	assert.Equal(t, "fex …/to/the/project", rowText(screen, 0))
}

func TestFormatPosition(t *testing.T) {
	state := sampleState("a", "b")
	state.SelectedIndex = 3
	state.Marks["a"] = struct{}{}
	state.SearchQuery = "b"

	assert.Equal(t, "4/4 · 1 marked · /b", formatPosition(state, false))
	assert.Equal(t, "empty", formatPosition(&statepkg.AppState{}, true))
}
