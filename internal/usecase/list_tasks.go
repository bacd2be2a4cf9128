package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/task-cli/internal/domain"
)

// Empty-result messages.
const (
	NoTasksMessage        = "No tasks."
	noTasksWithStatusText = "No task with status %s."
)

// NoTasksWithStatusMessage returns the message printed when no task has the status.
func NoTasksWithStatusMessage(status domain.Status) string {
	return fmt.Sprintf(noTasksWithStatusText, status)
}

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Status *domain.Status      // Filter by status (nil = all tasks)
	Format domain.OutputFormat // Output format for Text
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Text  string         // Rendered tasks, or the empty-result message
	Tasks []*domain.Task // Matching tasks in ascending ID order
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks    domain.TaskRepository
	renderer domain.TaskRenderer
	logger   domain.Logger
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, renderer domain.TaskRenderer, logger domain.Logger) *ListTasks {
	return &ListTasks{
		tasks:    tasks,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute lists tasks and renders them.
// A failed read is logged as a warning and treated as an empty list.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	var (
		tasks []*domain.Task
		err   error
	)
	if in.Status != nil {
		tasks, err = uc.tasks.ListByStatus(*in.Status)
	} else {
		tasks, err = uc.tasks.ListAll()
	}
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn(0, "list", err.Error())
		}
		tasks = nil
	}

	out := &ListTasksOutput{Tasks: tasks}

	if len(tasks) == 0 {
		if in.Status != nil {
			out.Text = NoTasksWithStatusMessage(*in.Status)
		} else {
			out.Text = NoTasksMessage
		}
		return out, nil
	}

	format := in.Format
	if format == "" {
		format = domain.FormatJSON
	}

	var buf bytes.Buffer
	if err := uc.renderer.Render(&buf, tasks, format); err != nil {
		return nil, fmt.Errorf("render tasks: %w", err)
	}
	out.Text = strings.TrimRight(buf.String(), "\n")

	return out, nil
}
