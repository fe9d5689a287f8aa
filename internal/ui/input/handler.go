package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/fex/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	state *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// Translate converts one tcell event into an Action. It returns nil for
// events with no binding in the current mode.
func (ih *InputHandler) Translate(ev tcell.Event) statepkg.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.translateKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return statepkg.ResizeAction{Width: w, Height: h}
	default:
		return nil
	}
}

func (ih *InputHandler) mode() statepkg.Mode {
	if ih.state == nil {
		return statepkg.ModeBrowsing
	}
	return ih.state.Mode
}

func (ih *InputHandler) translateKey(ev *tcell.EventKey) statepkg.Action {
	if ev.Key() == tcell.KeyCtrlC {
		return statepkg.QuitAction{}
	}

	switch ih.mode() {
	case statepkg.ModeAwaitingPrefix:
		return prefixKey(ev)
	case statepkg.ModeAwaitingConfirmation:
		return confirmKey(ev)
	case statepkg.ModeAwaitingTextInput:
		return promptKey(ev)
	case statepkg.ModeViewingFile, statepkg.ModeDone:
		return nil
	default:
		return browseKey(ev)
	}
}

func browseKey(ev *tcell.EventKey) statepkg.Action {
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyCtrlP:
		return statepkg.NavigateUpAction{}
	case tcell.KeyDown, tcell.KeyCtrlN:
		return statepkg.NavigateDownAction{}
	case tcell.KeyPgUp:
		return statepkg.ScrollPageUpAction{}
	case tcell.KeyPgDn:
		return statepkg.ScrollPageDownAction{}
	case tcell.KeyHome:
		return statepkg.GoTopAction{}
	case tcell.KeyEnd:
		return statepkg.GoBottomAction{}
	case tcell.KeyEnter, tcell.KeyRight:
		return statepkg.OpenAction{}
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		return statepkg.GoUpAction{}
	case tcell.KeyCtrlX:
		return statepkg.PrefixStartAction{}
	case tcell.KeyCtrlL:
		return statepkg.RefreshAction{}
	case tcell.KeyRune:
		return browseRune(ev.Rune())
	}
	return nil
}

func browseRune(r rune) statepkg.Action {
	switch r {
	case 'q':
		return statepkg.QuitAction{}
	case 'j':
		return statepkg.NavigateDownAction{}
	case 'k':
		return statepkg.NavigateUpAction{}
	case 'g':
		return statepkg.GoTopAction{}
	case 'G':
		return statepkg.GoBottomAction{}
	case 'h':
		return statepkg.GoUpAction{}
	case 'l':
		return statepkg.OpenAction{}
	case 'd':
		return statepkg.DeleteAction{}
	case 'r':
		return statepkg.RenameStartAction{}
	case 'm':
		return statepkg.MarkAction{}
	case 'u':
		return statepkg.UnmarkAction{}
	case ' ':
		return statepkg.ToggleMarkAction{}
	case '/':
		return statepkg.SearchStartAction{}
	case 'n':
		return statepkg.SearchNextAction{}
	case 'N':
		return statepkg.SearchPrevAction{}
	}
	return nil
}

func prefixKey(ev *tcell.EventKey) statepkg.Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		return statepkg.PrefixContinueAction{Key: "enter"}
	case tcell.KeyRune:
		return statepkg.PrefixContinueAction{Key: string(ev.Rune())}
	default:
		return statepkg.PrefixContinueAction{Key: ev.Name()}
	}
}

func confirmKey(ev *tcell.EventKey) statepkg.Action {
	if ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y') {
		return statepkg.ConfirmAction{Yes: true}
	}
	return statepkg.ConfirmAction{Yes: false}
}

func promptKey(ev *tcell.EventKey) statepkg.Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		return statepkg.PromptSubmitAction{}
	case tcell.KeyEscape, tcell.KeyCtrlG:
		return statepkg.PromptCancelAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return statepkg.PromptBackspaceAction{}
	case tcell.KeyDelete, tcell.KeyCtrlD:
		return statepkg.PromptDeleteAction{}
	case tcell.KeyLeft, tcell.KeyCtrlB:
		return statepkg.PromptMoveCursorAction{Direction: "left"}
	case tcell.KeyRight, tcell.KeyCtrlF:
		return statepkg.PromptMoveCursorAction{Direction: "right"}
	case tcell.KeyHome, tcell.KeyCtrlA:
		return statepkg.PromptMoveCursorAction{Direction: "home"}
	case tcell.KeyEnd, tcell.KeyCtrlE:
		return statepkg.PromptMoveCursorAction{Direction: "end"}
	case tcell.KeyCtrlU:
		return statepkg.PromptClearAction{}
	case tcell.KeyRune:
		return statepkg.PromptCharAction{Char: ev.Rune()}
	}
	return nil
}
