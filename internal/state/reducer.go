package state

import (
	"errors"
	"fmt"

	"github.com/kk-code-lab/fex/internal/logging"
	"github.com/kk-code-lab/fex/internal/search"
	"github.com/sirupsen/logrus"
)

// ErrUnknownKeySequence is returned for a prefix followed by an unbound key.
var ErrUnknownKeySequence = errors.New("unknown key sequence")

// Options configures a StateReducer. The zero value searches with
// case-sensitive regular expressions and discards logs.
type Options struct {
	SearchSyntax    search.Syntax
	CaseInsensitive bool
	Logger          logrus.FieldLogger
}

// StateReducer applies actions to an AppState.
type StateReducer struct {
	syntax          search.Syntax
	caseInsensitive bool
	log             logrus.FieldLogger
	prefixTable     map[string]Action
}

// NewStateReducer creates a new reducer
func NewStateReducer(opts Options) *StateReducer {
	syntax := opts.SearchSyntax
	if syntax == "" {
		syntax = search.SyntaxRegex
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &StateReducer{
		syntax:          syntax,
		caseInsensitive: opts.CaseInsensitive,
		log:             logger,
		prefixTable: map[string]Action{
			"enter": GoUpAction{},
			"r":     RenameStartAction{},
		},
	}
}

// Reduce applies action to state. Returned errors are recoverable and meant
// for the status line. The viewport is recomputed after every action.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	if action == nil || state.Mode == ModeDone {
		return state, nil
	}

	var err error
	switch a := action.(type) {
	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
	case QuitAction:
		state.Prompt = nil
		state.Pending = nil
		state.Mode = ModeDone
	default:
		state.clearStatus()
		switch state.Mode {
		case ModeAwaitingPrefix:
			err = r.reducePrefix(state, action)
		case ModeAwaitingConfirmation:
			err = r.reduceConfirmation(state, action)
		case ModeAwaitingTextInput:
			err = r.reducePrompt(state, action)
		case ModeViewingFile:
			err = r.reduceViewing(state, action)
		default:
			err = r.reduceBrowsing(state, action)
		}
	}

	state.RecomputeViewport()
	return state, err
}

func (r *StateReducer) reduceBrowsing(state *AppState, action Action) error {
	switch action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		state.MoveBy(1)
	case NavigateUpAction:
		state.MoveBy(-1)
	case ScrollPageDownAction:
		state.MoveBy(state.ViewportHeight())
	case ScrollPageUpAction:
		state.MoveBy(-state.ViewportHeight())
	case GoTopAction:
		state.MoveBy(-len(state.Files))
	case GoBottomAction:
		state.MoveBy(len(state.Files))
	case OpenAction:
		return r.open(state)
	case GoUpAction:
		return r.goUp(state)
	case RefreshAction:
		return r.refresh(state)

	// ===== MARKS =====

	case MarkAction:
		if state.SelectedIndex == 0 {
			state.markAll()
			return nil
		}
		state.applyMark(state.mark)
	case UnmarkAction:
		if state.SelectedIndex == 0 {
			state.clearMarks()
			return nil
		}
		state.applyMark(state.unmark)
	case ToggleMarkAction:
		if state.SelectedIndex == 0 {
			if state.allMarked() {
				state.clearMarks()
			} else {
				state.markAll()
			}
			return nil
		}
		state.applyMark(func(idx int) {
			if state.IsMarked(idx) {
				state.unmark(idx)
			} else {
				state.mark(idx)
			}
		})

	// ===== FILE OPERATIONS =====

	case DeleteAction:
		r.startDelete(state)
	case RenameStartAction:
		r.startRename(state)

	// ===== SEARCH =====

	case SearchStartAction:
		state.Prompt = newPrompt(PromptSearch, "/", "")
		state.Mode = ModeAwaitingTextInput
	case SearchNextAction:
		return r.searchForward(state)
	case SearchPrevAction:
		return r.searchBackward(state)

	// ===== PREFIX =====

	case PrefixStartAction:
		state.Mode = ModeAwaitingPrefix
		state.setStatus(StatusInfo, "C-x-")
	}
	return nil
}

func (r *StateReducer) reducePrefix(state *AppState, action Action) error {
	state.Mode = ModeBrowsing

	cont, ok := action.(PrefixContinueAction)
	if !ok {
		return fmt.Errorf("C-x: %w", ErrUnknownKeySequence)
	}
	next, ok := r.prefixTable[cont.Key]
	if !ok {
		return fmt.Errorf("C-x %s: %w", cont.Key, ErrUnknownKeySequence)
	}
	return r.reduceBrowsing(state, next)
}

func (r *StateReducer) reduceConfirmation(state *AppState, action Action) error {
	confirm, ok := action.(ConfirmAction)
	if !ok {
		return nil
	}
	return r.finishDelete(state, confirm.Yes)
}

func (r *StateReducer) reducePrompt(state *AppState, action Action) error {
	p := state.Prompt
	if p == nil {
		state.Mode = ModeBrowsing
		return nil
	}

	switch a := action.(type) {
	case PromptCharAction:
		p.insert(a.Char)
	case PromptBackspaceAction:
		p.backspace()
	case PromptDeleteAction:
		p.deleteForward()
	case PromptMoveCursorAction:
		p.move(a.Direction)
	case PromptClearAction:
		p.clear()
	case PromptCancelAction:
		state.Prompt = nil
		state.Mode = ModeBrowsing
	case PromptSubmitAction:
		state.Prompt = nil
		state.Mode = ModeBrowsing
		switch p.Purpose {
		case PromptSearch:
			return r.submitSearch(state, p.Text())
		case PromptRename:
			return r.submitRename(state, p.Target, p.Text())
		}
	}
	return nil
}

func (r *StateReducer) reduceViewing(state *AppState, action Action) error {
	closed, ok := action.(ViewerClosedAction)
	if !ok {
		return nil
	}
	state.Mode = ModeBrowsing
	state.ViewingPath = ""
	return closed.Err
}
