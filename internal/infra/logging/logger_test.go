package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2025, 12, 30, 9, 32, 51, 0, time.Local)

	assert.Equal(t,
		"[2025-12-30 09:32:51] [INFO] [task-1] [add] created\n",
		formatLog(ts, slog.LevelInfo, 1, "add", "created"))
	assert.Equal(t,
		"[2025-12-30 09:32:51] [WARN] [global] [list] read failed\n",
		formatLog(ts, slog.LevelWarn, 0, "list", "read failed"))
}

func TestLogger_File(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "logs", "task-cli.log")
	logger := New(path, nil, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Info(1, "add", "created")
	logger.Debug(1, "add", "hidden")
	logger.Error(0, "store", "write failed")

	// Verify
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[INFO] [task-1] [add] created")
	assert.Contains(t, lines[1], "[ERROR] [global] [store] write failed")
}

func TestLogger_FileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task-cli.log")

	first := New(path, nil, slog.LevelInfo)
	first.Info(0, "run", "one")
	require.NoError(t, first.Close())

	second := New(path, nil, slog.LevelInfo)
	second.Info(0, "run", "two")
	require.NoError(t, second.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "one")
	assert.Contains(t, string(content), "two")
}

func TestLogger_Stderr(t *testing.T) {
	var stderr bytes.Buffer
	logger := New("", &stderr, slog.LevelDebug)

	logger.Info(1, "add", "created")
	logger.Warn(0, "list", "read failed")
	logger.Error(3, "delete", "write failed")

	out := stderr.String()
	assert.NotContains(t, out, "created", "info stays off stderr")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="read failed"`)
	assert.Contains(t, out, "category=list")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "task=3")
	assert.NotContains(t, out, "time=")
}

func TestLogger_StderrRespectsLevel(t *testing.T) {
	var stderr bytes.Buffer
	logger := New("", &stderr, slog.LevelError)

	logger.Warn(0, "list", "read failed")
	assert.Empty(t, stderr.String())

	logger.Error(0, "list", "broken")
	assert.Contains(t, stderr.String(), "broken")
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", nil, slog.LevelDebug)

	// Must not panic or create anything
	logger.Error(1, "x", "y")
	assert.NoError(t, logger.Close())
}
