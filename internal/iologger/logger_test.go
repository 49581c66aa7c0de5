package iologger

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gnlineage/pkg/config"
	"github.com/gnames/gnlineage/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := t.TempDir()
	path := filepath.Join(dir, LogFile)
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	closer, err := Init(dir, cfg, false)
	require.NoError(t, err)
	slog.Info("first", "queries", 2)
	slog.Debug("hidden")
	require.NoError(t, closer.Close())

	closer, err = Init(dir, cfg, true)
	require.NoError(t, err)
	slog.Warn("second")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "first", rec["msg"])
	assert.Equal(t, float64(2), rec["queries"])

	closer, err = Init(dir, cfg, false)
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content, "log is truncated without append")
}

func TestInitTextLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "text", Level: "debug", Destination: "file"}

	closer, err := Init(dir, cfg, false)
	require.NoError(t, err)
	slog.Debug("loading dump", "file", "names.dmp")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), "level=DEBUG")
	assert.Contains(t, string(content), "file=names.dmp")
}

func TestInitError(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	cfg := config.LogConfig{Destination: "file"}
	closer, err := Init(filepath.Join(t.TempDir(), "none"), cfg, false)
	assert.NotNil(t, closer)
	assert.True(t, errcode.Is(err, errcode.CreateLogFileError))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
