package app

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fex/internal/config"
	"github.com/kk-code-lab/fex/internal/logging"
	statepkg "github.com/kk-code-lab/fex/internal/state"
	inputui "github.com/kk-code-lab/fex/internal/ui/input"
	pagerui "github.com/kk-code-lab/fex/internal/ui/pager"
	renderui "github.com/kk-code-lab/fex/internal/ui/render"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// NewApplication takes over the terminal and loads the first directory.
// Every failure after the screen is initialised releases it again.
func NewApplication(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	fail := func(stage string, err error) (*Application, error) {
		logger.WithField("stage", stage).WithError(err).Error("initialization failed")
		return nil, &InitializationError{Stage: stage, Err: err}
	}

	screen := opts.Screen
	if screen == nil {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fail("terminal", ErrNotTerminal)
		}
		s, err := tcell.NewScreen()
		if err != nil {
			return fail("screen", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return fail("screen", err)
	}

	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		screen.Fini()
		return fail("size", fmt.Errorf("unusable terminal size %dx%d", w, h))
	}

	dir := opts.StartDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			screen.Fini()
			return fail("cwd", err)
		}
		dir = cwd
	}

	state := &statepkg.AppState{ScreenWidth: w, ScreenHeight: h}
	if err := statepkg.LoadDirectory(state, dir); err != nil {
		screen.Fini()
		return fail("load", err)
	}
	state.RecomputeViewport()

	reducer := statepkg.NewStateReducer(statepkg.Options{
		SearchSyntax:    cfg.SearchSyntax(),
		CaseInsensitive: !cfg.Search.CaseSensitive,
		Logger:          logger,
	})
	renderer := renderui.NewRenderer(screen)
	renderer.ShowSize = cfg.UI.ShowSize
	inputHandler := inputui.NewInputHandler()
	inputHandler.SetState(state)

	logger.WithFields(logrus.Fields{"path": state.CurrentPath, "width": w, "height": h}).Info("session started")

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderer,
		input:    inputHandler,
		log:      logger,
	}, nil
}

// Run renders, waits for one event and applies it until the session is done.
func (app *Application) Run() error {
	for app.state.Mode != statepkg.ModeDone {
		app.renderer.Render(app.state)

		ev := app.screen.PollEvent()
		if ev == nil {
			// Screen finalised underneath us.
			return nil
		}
		app.handleEvent(ev)

		if app.state.Mode == statepkg.ModeViewingFile {
			app.viewFile()
		}
	}
	app.log.WithField("path", app.state.CurrentPath).Info("session ended")
	return nil
}

func (app *Application) handleEvent(ev tcell.Event) {
	if _, ok := ev.(*tcell.EventResize); ok {
		app.screen.Sync()
	}
	if action := app.input.Translate(ev); action != nil {
		app.dispatch(action)
	}
}

func (app *Application) dispatch(action statepkg.Action) {
	state, err := app.reducer.Reduce(app.state, action)
	app.state = state
	app.input.SetState(state)
	if err != nil {
		state.LastError = err
		app.log.WithFields(logrus.Fields{
			"action": fmt.Sprintf("%T", action),
			"mode":   state.Mode.String(),
		}).WithError(err).Debug("action failed")
	}
}

// viewFile runs the pager over the cursor file on the same screen, then
// returns to browsing.
func (app *Application) viewFile() {
	path := app.state.ViewingPath
	pager, err := pagerui.NewFilePager(app.screen, path)
	if err == nil {
		app.log.WithField("path", path).Debug("viewing file")
		err = pager.Run()
	}

	w, h := app.screen.Size()
	app.dispatch(statepkg.ResizeAction{Width: w, Height: h})
	app.dispatch(statepkg.ViewerClosedAction{Err: err})
}
