package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/task-cli/internal/domain"
)

// MarkTaskInput contains the parameters for changing a task's status.
type MarkTaskInput struct {
	Status domain.Status // Target status
	TaskID int           // Task ID to mark
}

// MarkTaskOutput contains the result of changing a task's status.
type MarkTaskOutput struct {
	Status domain.Status // Status the task now has
}

// MarkTask is the use case for changing a task's status.
// Any status may follow any other.
type MarkTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewMarkTask creates a new MarkTask use case.
func NewMarkTask(tasks domain.TaskRepository, logger domain.Logger) *MarkTask {
	return &MarkTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute sets the task's status.
func (uc *MarkTask) Execute(_ context.Context, in MarkTaskInput) (*MarkTaskOutput, error) {
	var err error
	switch in.Status {
	case domain.StatusInProgress:
		err = uc.tasks.MarkInProgress(in.TaskID)
	case domain.StatusDone:
		err = uc.tasks.MarkDone(in.TaskID)
	default:
		err = uc.tasks.SetStatus(in.TaskID, in.Status)
	}
	if err != nil {
		logError(uc.logger, in.TaskID, "mark", err)
		return nil, fmt.Errorf("mark task %s: %w", in.Status.Keyword(), err)
	}

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "mark", fmt.Sprintf("status: %s", in.Status))
	}

	return &MarkTaskOutput{Status: in.Status}, nil
}
