// Package logging provides the task-cli logger.
// Warnings and errors go to stderr through slog. When a log file is
// configured, every entry at or above the level is also appended there.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/task-cli/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes formatted entries to an optional file and to stderr.
// Fields are ordered to minimize memory padding.
type Logger struct {
	stderr *slog.Logger
	file   *os.File
	now    func() time.Time
	path   string
	mu     sync.Mutex
	level  slog.Level
}

// New creates a new Logger.
// If path is empty, file logging is disabled. If stderr is nil, nothing is
// written to stderr.
func New(path string, stderr io.Writer, level slog.Level) *Logger {
	l := &Logger{
		path:  path,
		level: level,
		now:   time.Now,
	}
	if stderr != nil {
		l.stderr = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level:       max(level, slog.LevelWarn),
			ReplaceAttr: dropTime,
		}))
	}
	return l
}

// dropTime removes the time attribute from stderr output.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}
	return a
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureFile opens or returns the log file.
func (l *Logger) ensureFile() (*os.File, error) {
	if l.file != nil {
		return l.file, nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file if it was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLog formats a log entry in the specified format.
// Format: [2025-12-30 09:32:51] [INFO] [task-1] [category] message
func formatLog(t time.Time, level slog.Level, taskID int, category, msg string) string {
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		domain.TaskLogLabel(taskID),
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes a log entry to the file and, for warnings and errors, stderr.
func (l *Logger) log(level slog.Level, taskID int, category, msg string) {
	if level < l.level {
		return // Skip if below minimum level
	}

	if l.stderr != nil {
		attrs := []any{slog.String("category", category)}
		if taskID > 0 {
			attrs = append(attrs, slog.Int("task", taskID))
		}
		l.stderr.Log(context.Background(), level, msg, attrs...)
	}

	if l.path == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if f, err := l.ensureFile(); err == nil {
		_, _ = io.WriteString(f, formatLog(l.now(), level, taskID, category, msg))
	}
}

// Info logs an info message.
func (l *Logger) Info(taskID int, category, msg string) {
	l.log(slog.LevelInfo, taskID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(taskID int, category, msg string) {
	l.log(slog.LevelDebug, taskID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(taskID int, category, msg string) {
	l.log(slog.LevelWarn, taskID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(taskID int, category, msg string) {
	l.log(slog.LevelError, taskID, category, msg)
}
