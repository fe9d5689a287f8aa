package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/fex/internal/config"
	"github.com/sirupsen/logrus"
)

// New builds the session logger. The terminal belongs to the UI, so output
// goes to cfg.File or is discarded. The returned closer releases the file.
func New(cfg config.LogConfig) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(defaultLevel(cfg.Level))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)

	path := strings.TrimSpace(cfg.File)
	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("unable to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f, nil
}

// Discard returns a logger that drops everything, for tests and defaults.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func defaultLevel(level string) string {
	if strings.TrimSpace(level) == "" {
		return "info"
	}
	return level
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
