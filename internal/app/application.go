package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fex/internal/config"
	statepkg "github.com/kk-code-lab/fex/internal/state"
	inputui "github.com/kk-code-lab/fex/internal/ui/input"
	renderui "github.com/kk-code-lab/fex/internal/ui/render"
	"github.com/sirupsen/logrus"
)

// ErrNotTerminal reports that standard input cannot drive a full-screen UI.
var ErrNotTerminal = errors.New("standard input is not a terminal")

// InitializationError wraps any failure before the event loop starts.
type InitializationError struct {
	Stage string
	Err   error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialization failed (%s): %v", e.Stage, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// Options configures NewApplication.
type Options struct {
	// StartDir is the first directory listed; empty means the working directory.
	StartDir string
	// Config defaults to config.Default().
	Config *config.Config
	// Logger defaults to a discarding logger.
	Logger *logrus.Logger
	// Screen overrides the terminal screen. The application still owns
	// its Init and Fini.
	Screen tcell.Screen
}

// Application represents the running app.
type Application struct {
	screen    tcell.Screen
	state     *statepkg.AppState
	reducer   *statepkg.StateReducer
	renderer  *renderui.Renderer
	input     *inputui.InputHandler
	log       logrus.FieldLogger
	closeOnce sync.Once
}

// Close restores the terminal. It is safe to call more than once.
func (app *Application) Close() error {
	app.closeOnce.Do(func() {
		app.screen.Fini()
	})
	return nil
}

// State returns the current session state.
func (app *Application) State() *statepkg.AppState {
	return app.state
}
