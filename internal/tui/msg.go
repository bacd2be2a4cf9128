package tui

import "github.com/runoshun/task-cli/internal/domain"

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when tasks are loaded from the task file.
type MsgTasksLoaded struct {
	Tasks []*domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskAdded is sent when a new task is created.
type MsgTaskAdded struct {
	TaskID int
}

func (MsgTaskAdded) sealed() {}

// MsgTaskUpdated is sent when a task description is replaced.
type MsgTaskUpdated struct {
	TaskID int
}

func (MsgTaskUpdated) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID int
}

func (MsgTaskDeleted) sealed() {}

// MsgTaskStatusUpdated is sent when a task status is updated.
type MsgTaskStatusUpdated struct {
	Status domain.Status
	TaskID int
}

func (MsgTaskStatusUpdated) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
