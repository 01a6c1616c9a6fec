package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ledgerline.log")

	logger, err := New(Config{Level: "debug", Encoding: "json", OutputPath: path})
	require.NoError(t, err)

	logger.Debug("Entering slide", zap.String("slideID", "intro"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"level":"DEBUG"`)
	assert.Contains(t, string(data), `"slideID":"intro"`)
	assert.Contains(t, string(data), `"timestamp"`)
}

func TestNewFiltersBelowLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgerline.log")

	logger, err := New(Config{Level: "warn", OutputPath: path})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse log level "loud"`)
}

func TestNewOffIsNop(t *testing.T) {
	logger, err := New(Config{Level: "OFF"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}
