package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/task-cli/internal/domain"
)

// UpdateTaskInput contains the parameters for updating a task.
type UpdateTaskInput struct {
	Description string // New description
	TaskID      int    // Task ID to update
}

// UpdateTaskOutput contains the result of updating a task.
type UpdateTaskOutput struct{}

// UpdateTask is the use case for replacing a task's description.
type UpdateTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(tasks domain.TaskRepository, logger domain.Logger) *UpdateTask {
	return &UpdateTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute replaces the description of the task.
// Returns an error wrapping domain.ErrTaskNotFound if the task does not exist.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	if err := uc.tasks.UpdateTask(in.TaskID, in.Description); err != nil {
		logError(uc.logger, in.TaskID, "update", err)
		return nil, fmt.Errorf("update task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "update", fmt.Sprintf("description: %q", in.Description))
	}

	return &UpdateTaskOutput{}, nil
}
