package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/task-cli/internal/domain"
)

// ImportTasksInput contains parameters for ImportTasks.
type ImportTasksInput struct {
	// Status imports only tasks with this status (nil = all tasks).
	Status *domain.Status
}

// ImportTasksOutput contains import results.
type ImportTasksOutput struct {
	IDs      []int // New IDs in the destination, in source order
	Total    int   // Tasks read from the source
	Imported int
}

// ImportTasks copies tasks from another task file into the current one.
// Imported tasks get fresh IDs and timestamps; description and status are kept.
type ImportTasks struct {
	source domain.TaskRepository
	dest   domain.TaskRepository
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(source, dest domain.TaskRepository, logger domain.Logger) *ImportTasks {
	return &ImportTasks{source: source, dest: dest, logger: logger}
}

// Execute imports the source tasks in ascending ID order.
// A failure stops the import; tasks already imported stay in the destination.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	if uc.source == nil || uc.dest == nil {
		return nil, errors.New("source or destination store is nil")
	}
	// The store reads a missing file as empty.
	if si, ok := uc.source.(domain.StoreInitializer); ok && !si.IsInitialized() {
		return nil, domain.ErrSourceNotFound
	}

	var (
		tasks []*domain.Task
		err   error
	)
	if in.Status != nil {
		tasks, err = uc.source.ListByStatus(*in.Status)
	} else {
		tasks, err = uc.source.ListAll()
	}
	if err != nil {
		logError(uc.logger, 0, "import", err)
		return nil, fmt.Errorf("list source tasks: %w", err)
	}

	out := &ImportTasksOutput{Total: len(tasks)}
	for _, task := range tasks {
		if task == nil {
			continue
		}

		id, err := uc.dest.AddTaskWithStatus(task.Description, task.Status)
		if err != nil {
			logError(uc.logger, 0, "import", err)
			return out, fmt.Errorf("import task %d: %w", task.ID, err)
		}

		out.IDs = append(out.IDs, id)
		out.Imported++
		if uc.logger != nil {
			uc.logger.Info(id, "import", fmt.Sprintf("imported from task %d", task.ID))
		}
	}

	return out, nil
}
