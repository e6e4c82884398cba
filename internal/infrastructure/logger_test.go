package infrastructure

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablekit/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "level %q", tt.in)
	}
}

func TestCreateLogger(t *testing.T) {
	logger, err := createLogger(config.LoggingConfig{
		Level:  "debug",
		Format: "json",
		Output: "stderr",
	})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestCreateLoggerFileOutput(t *testing.T) {
	path := t.TempDir() + "/logs/test.log"
	logger, err := createLogger(config.LoggingConfig{
		Level:    "info",
		Format:   "text",
		Output:   "file",
		FilePath: path,
	})
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("hello")

	assert.FileExists(t, path)
}

func TestGetLoggerFallsBackToDefault(t *testing.T) {
	if globalLogger != nil {
		t.Skip("global logger already initialized by another test")
	}
	assert.NotNil(t, GetLogger())
}
