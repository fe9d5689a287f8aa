package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/fex/internal/app"
	"github.com/kk-code-lab/fex/internal/config"
	"github.com/kk-code-lab/fex/internal/logging"
	"github.com/spf13/cobra"
)

var errOptionsUnimplemented = errors.New("options are unimplemented")

// launcher starts a session in dir; replaced in tests.
type launcher func(dir string) error

func main() {
	// Set UTF-8 as fallback encoding so non-ASCII names display correctly
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	cmd := NewRootCmd(runSession)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fex: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command
func NewRootCmd(launch launcher) *cobra.Command {
	return &cobra.Command{
		Use:   "fex [DIR]",
		Short: "Browse, search and manage files in a full-screen terminal view",
		Long: `fex lists a directory full-screen and lets you move through it, search
entry names, mark entries, delete them recursively and rename them.

Keys: j/k move, Enter open, h parent, / search, n/N repeat, m/u mark,
d delete, C-x r rename, C-x Enter parent, q quit.`,
		Args:               validateArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return launch(dir)
		},
	}
}

func validateArgs(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return errOptionsUnimplemented
		}
	}
	return cobra.MaximumNArgs(1)(cmd, args)
}

// runSession loads configuration, opens the log and drives the UI until
// the user quits. The terminal is restored before any error is reported.
func runSession(dir string) error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return &apppkg.InitializationError{Stage: "config", Err: err}
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return &apppkg.InitializationError{Stage: "log", Err: err}
	}
	defer closeQuietly(closer)

	app, err := apppkg.NewApplication(apppkg.Options{
		StartDir: dir,
		Config:   cfg,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	return app.Run()
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
