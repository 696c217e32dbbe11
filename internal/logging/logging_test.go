package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, parseLevel(""))
}

func TestNewHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	slog.New(newHandler(&buf, "info", "json")).Info("unit added", "id", 3)
	assert.Contains(t, buf.String(), `"id":3`)

	buf.Reset()
	slog.New(newHandler(&buf, "info", "text")).Info("unit added", "id", 3)
	assert.Contains(t, buf.String(), "id=3")

	buf.Reset()
	h := newHandler(&buf, "warn", "json")
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
}

func TestNewWritesLogFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	path := filepath.Join(t.TempDir(), "unitregistry.log")
	logger, cleanup, err := New("info", "json", path)
	require.NoError(t, err)

	logger.Info("unit removed", "id", 7)
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "unit removed")
}
