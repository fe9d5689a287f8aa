package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kk-code-lab/fex/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fex.log")
	logger, closer, err := New(config.LogConfig{File: path, Level: "debug"})
	require.NoError(t, err)

	logger.WithFields(logrus.Fields{"path": "/tmp"}).Debug("directory loaded")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "directory loaded")
	assert.Contains(t, string(data), "path=/tmp")
	assert.Contains(t, string(data), "level=debug")
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fex.log")
	logger, closer, err := New(config.LogConfig{File: path, Level: "warn"})
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestNewWithoutFileDiscards(t *testing.T) {
	logger, closer, err := New(config.LogConfig{})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "shout"})
	assert.Error(t, err)
}
