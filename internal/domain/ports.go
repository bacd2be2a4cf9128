package domain

import (
	"fmt"
	"io"
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// IsInitialized reports whether the task file exists.
	IsInitialized() bool
	// Initialize creates an empty task file if it doesn't exist.
	Initialize() error
}

// TaskRepository manages task persistence.
// Every call reloads the backing file; mutating calls rewrite it in full.
type TaskRepository interface {
	// AddTask creates a TODO task with the next id (max existing id + 1) and returns the id.
	AddTask(description string) (int, error)

	// AddTaskWithStatus is AddTask with an initial status, applied in the same write.
	AddTaskWithStatus(description string, status Status) (int, error)

	// UpdateTask replaces a task's description.
	// Returns ErrTaskNotFound without touching the file if the id is absent.
	UpdateTask(id int, description string) error

	// DeleteTask removes a task. Returns ErrTaskNotFound if the id is absent.
	DeleteTask(id int) error

	// MarkInProgress sets a task's status to StatusInProgress.
	MarkInProgress(id int) error

	// MarkDone sets a task's status to StatusDone.
	MarkDone(id int) error

	// SetStatus sets a task's status to any valid status.
	SetStatus(id int, status Status) error

	// ListAll returns every task in ascending id order.
	ListAll() ([]*Task, error)

	// ListByStatus returns tasks with exactly the given status in ascending id order.
	ListByStatus(status Status) ([]*Task, error)
}

// TaskRenderer turns tasks into display text.
type TaskRenderer interface {
	// Render writes tasks in the given format.
	Render(w io.Writer, tasks []*Task, format OutputFormat) error
}

// Logger records operational events.
// taskID 0 means the entry is not about a single task.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// TaskLogLabel returns the label identifying a task in log file entries.
func TaskLogLabel(taskID int) string {
	if taskID > 0 {
		return fmt.Sprintf("task-%d", taskID)
	}
	return "global"
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- project).
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetInfo returns the locations and existence of the config files.
	GetInfo() ConfigInfo

	// InitProject writes the config template to the project config path.
	InitProject() error

	// InitGlobal writes the config template to the global config path.
	InitGlobal() error
}

// ConfigInfo describes where configuration files live.
type ConfigInfo struct {
	GlobalPath    string
	ProjectPath   string
	GlobalExists  bool
	ProjectExists bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
