package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/task-cli/internal/testutil"
	"github.com/runoshun/task-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitStore_Execute(t *testing.T) {
	storeInit := &testutil.MockStoreInitializer{}
	logger := &testutil.MockLogger{}
	uc := usecase.NewInitStore(storeInit, logger)

	out, err := uc.Execute(context.Background(), usecase.InitStoreInput{StorePath: "/work/tasks.json"})

	require.NoError(t, err)
	assert.Equal(t, "/work/tasks.json", out.StorePath)
	assert.False(t, out.AlreadyInitialized)
	assert.True(t, storeInit.Called)
	assert.True(t, storeInit.Initialized)
	assert.Equal(t, []string{"INFO"}, logger.Levels())
}

func TestInitStore_Execute_AlreadyInitialized(t *testing.T) {
	storeInit := &testutil.MockStoreInitializer{Initialized: true}
	uc := usecase.NewInitStore(storeInit, nil)

	out, err := uc.Execute(context.Background(), usecase.InitStoreInput{StorePath: "tasks.json"})

	require.NoError(t, err)
	assert.True(t, out.AlreadyInitialized)
	assert.False(t, storeInit.Called, "existing file must not be rewritten")
}

func TestInitStore_Execute_Error(t *testing.T) {
	storeInit := &testutil.MockStoreInitializer{InitErr: errors.New("permission denied")}
	logger := &testutil.MockLogger{}
	uc := usecase.NewInitStore(storeInit, logger)

	out, err := uc.Execute(context.Background(), usecase.InitStoreInput{StorePath: "tasks.json"})

	assert.Nil(t, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, []string{"ERROR"}, logger.Levels())
}
