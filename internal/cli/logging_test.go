package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/minigrep/internal/config"
)

func TestNewLogger_DefaultsToWarn(t *testing.T) {
	stderr := &bytes.Buffer{}

	logger, closer, err := newLogger(config.LogSettings{}, false, stderr)
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	logger.Info("hidden")
	assert.Empty(t, stderr.String())
}

func TestNewLogger_VerboseWins(t *testing.T) {
	stderr := &bytes.Buffer{}

	logger, closer, err := newLogger(config.LogSettings{Level: "error"}, true, stderr)
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	logger.Debug("shown")
	assert.Contains(t, stderr.String(), "shown")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, _, err := newLogger(config.LogSettings{Level: "loud"}, false, &bytes.Buffer{})

	assert.Error(t, err)
}

func TestNewLogger_WritesRotatedFile(t *testing.T) {
	stderr := &bytes.Buffer{}
	path := filepath.Join(t.TempDir(), "logs", "minigrep.log")

	logger, closer, err := newLogger(config.LogSettings{Level: "info", File: path, MaxSizeMB: 1}, false, stderr)
	require.NoError(t, err)

	logger.Info("to both sinks")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both sinks")
	assert.Contains(t, stderr.String(), "to both sinks")
}
