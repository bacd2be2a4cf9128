// Package usecase contains application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/task-cli/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Description string // Task description (empty is accepted)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	TaskID int // The ID of the created task
}

// AddTask is the use case for adding a new task.
type AddTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute adds a task in TODO status.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	id, err := uc.tasks.AddTask(in.Description)
	if err != nil {
		logError(uc.logger, 0, "add", err)
		return nil, fmt.Errorf("add task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(id, "add", fmt.Sprintf("created: %q", in.Description))
	}

	return &AddTaskOutput{TaskID: id}, nil
}

// logError records a failed repository call.
// Not-found is an expected outcome and is logged at debug level only.
func logError(logger domain.Logger, taskID int, category string, err error) {
	if logger == nil {
		return
	}
	if errors.Is(err, domain.ErrTaskNotFound) {
		logger.Debug(taskID, category, err.Error())
		return
	}
	logger.Error(taskID, category, err.Error())
}
