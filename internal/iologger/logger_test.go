package iologger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/config"
	"github.com/gnames/wcvp/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		level slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.level, parseLevel(v.input), v.input)
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	h := newHandler(&buf, config.LogConfig{Format: "json", Level: "warn"})
	log := slog.New(h)
	log.Info("hidden")
	log.Warn("shown", "records", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &res))
	assert.Equal(t, "shown", res["msg"])
	assert.Equal(t, float64(3), res["records"])

	buf.Reset()
	h = newHandler(&buf, config.LogConfig{Format: "text", Level: "info"})
	slog.New(h).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

func TestInitFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test")
	}
	defer slog.SetDefault(slog.Default())
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "text", Level: "info", Destination: "file"}
	path := filepath.Join(dir, LogFile)

	closer, err := Init(dir, cfg, false)
	require.NoError(t, err)
	slog.Info("first")
	require.NoError(t, closer.Close())

	closer, err = Init(dir, cfg, true)
	require.NoError(t, err)
	slog.Info("second")
	require.NoError(t, closer.Close())

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "msg=first")
	assert.Contains(t, string(bs), "msg=second")

	closer, err = Init(dir, cfg, false)
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	bs, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, bs, "file is truncated")
}

func TestInitFileError(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test")
	}
	defer slog.SetDefault(slog.Default())
	dir := filepath.Join(t.TempDir(), "missing")
	cfg := config.LogConfig{Destination: "file"}

	closer, err := Init(dir, cfg, false)
	require.Error(t, err)
	assert.NotNil(t, closer)
	assert.Equal(t, errcode.CreateLogFileError, err.(*gn.Error).Code)
}
