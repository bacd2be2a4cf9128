package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/testutil"
	"github.com/runoshun/task-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkTask_Execute(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.Status
		target domain.Status
	}{
		{"todo to in progress", domain.StatusTodo, domain.StatusInProgress},
		{"todo to done", domain.StatusTodo, domain.StatusDone},
		{"done to todo", domain.StatusDone, domain.StatusTodo},
		{"done to in progress", domain.StatusDone, domain.StatusInProgress},
		{"in progress again", domain.StatusInProgress, domain.StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testutil.NewMockTaskRepository()
			repo.Seed(1, "task", tt.from)
			uc := usecase.NewMarkTask(repo, nil)

			out, err := uc.Execute(context.Background(), usecase.MarkTaskInput{TaskID: 1, Status: tt.target})

			require.NoError(t, err)
			assert.Equal(t, tt.target, out.Status)
			assert.Equal(t, tt.target, repo.Tasks[1].Status)
		})
	}
}

func TestMarkTask_Execute_NotFound(t *testing.T) {
	for _, status := range domain.AllStatuses() {
		t.Run(string(status), func(t *testing.T) {
			uc := usecase.NewMarkTask(testutil.NewMockTaskRepository(), nil)

			_, err := uc.Execute(context.Background(), usecase.MarkTaskInput{TaskID: 7, Status: status})

			assert.ErrorIs(t, err, domain.ErrTaskNotFound)
		})
	}
}

func TestMarkTask_Execute_InvalidStatus(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Seed(1, "task", domain.StatusTodo)
	uc := usecase.NewMarkTask(repo, nil)

	_, err := uc.Execute(context.Background(), usecase.MarkTaskInput{TaskID: 1, Status: "BLOCKED"})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Equal(t, domain.StatusTodo, repo.Tasks[1].Status)
}

func TestMarkTask_Execute_StoreError(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Seed(1, "task", domain.StatusTodo)
	repo.StatusErr = errors.New("no space left on device")
	logger := &testutil.MockLogger{}
	uc := usecase.NewMarkTask(repo, logger)

	_, err := uc.Execute(context.Background(), usecase.MarkTaskInput{TaskID: 1, Status: domain.StatusDone})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mark task done")
	assert.Equal(t, []string{"ERROR"}, logger.Levels())
}
