package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/task-cli/internal/domain"
)

// ShowLogsInput contains the parameters for showing the log file.
type ShowLogsInput struct {
	TaskID int // Only entries about this task (0 = all entries)
	Lines  int // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing the log file.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Log file content
}

// ShowLogs is the use case for viewing the log file.
type ShowLogs struct {
	logPath string
}

// NewShowLogs creates a new ShowLogs use case.
func NewShowLogs(logPath string) *ShowLogs {
	return &ShowLogs{logPath: logPath}
}

// Execute reads and returns the log file content.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	if uc.logPath == "" {
		return nil, fmt.Errorf("%w: set [log] file in the config", domain.ErrNoLogFile)
	}

	content, err := os.ReadFile(uc.logPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", domain.ErrNoLogFile, uc.logPath)
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		lines = nil
	}

	if in.TaskID > 0 {
		label := "[" + domain.TaskLogLabel(in.TaskID) + "]"
		kept := lines[:0]
		for _, line := range lines {
			if strings.Contains(line, label) {
				kept = append(kept, line)
			}
		}
		lines = kept
	}

	// If lines is specified, get only the last N lines
	if in.Lines > 0 && len(lines) > in.Lines {
		lines = lines[len(lines)-in.Lines:]
	}

	result := strings.Join(lines, "\n")
	if result != "" {
		result += "\n"
	}

	return &ShowLogsOutput{
		LogPath: uc.logPath,
		Content: result,
	}, nil
}
