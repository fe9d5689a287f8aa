package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type GoTopAction struct{}
type GoBottomAction struct{}

// OpenAction enters the directory under the cursor or views the file.
type OpenAction struct{}

// GoUpAction navigates to "..".
type GoUpAction struct{}

// RefreshAction reloads the current directory in place.
type RefreshAction struct{}

// ===== MARK ACTIONS =====

type MarkAction struct{}
type UnmarkAction struct{}
type ToggleMarkAction struct{}

// ===== FILE OPERATION ACTIONS =====

type DeleteAction struct{}

// ConfirmAction answers a pending yes/no question.
type ConfirmAction struct {
	Yes bool
}

type RenameStartAction struct{}

// ===== SEARCH ACTIONS =====

type SearchStartAction struct{}
type SearchNextAction struct{}
type SearchPrevAction struct{}

// ===== PROMPT ACTIONS =====

type PromptCharAction struct {
	Char rune
}
type PromptBackspaceAction struct{}
type PromptDeleteAction struct{}
type PromptMoveCursorAction struct {
	Direction string // "left", "right", "home", "end"
}
type PromptClearAction struct{}
type PromptSubmitAction struct{}
type PromptCancelAction struct{}

// ===== PREFIX ACTIONS =====

// PrefixStartAction begins a two-key command.
type PrefixStartAction struct{}

// PrefixContinueAction carries the key that follows the prefix.
// Key is a single character, or "enter".
type PrefixContinueAction struct {
	Key string
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ViewerClosedAction is dispatched once the file viewer returns.
type ViewerClosedAction struct {
	Err error
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
