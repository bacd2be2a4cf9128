package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/task-cli/internal/domain"
)

// InitStoreInput contains the input parameters for InitStore.
type InitStoreInput struct {
	StorePath string // Path to the task file, reported back in the output
}

// InitStoreOutput contains the output from InitStore.
type InitStoreOutput struct {
	StorePath          string // Path to the task file
	AlreadyInitialized bool   // True if the file existed and was left untouched
}

// InitStore creates an empty task file.
type InitStore struct {
	storeInit domain.StoreInitializer
	logger    domain.Logger
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(storeInit domain.StoreInitializer, logger domain.Logger) *InitStore {
	return &InitStore{storeInit: storeInit, logger: logger}
}

// Execute creates the task file when it is missing.
// An existing file is never rewritten.
func (uc *InitStore) Execute(_ context.Context, in InitStoreInput) (*InitStoreOutput, error) {
	out := &InitStoreOutput{StorePath: in.StorePath}

	if uc.storeInit.IsInitialized() {
		out.AlreadyInitialized = true
		return out, nil
	}

	if err := uc.storeInit.Initialize(); err != nil {
		logError(uc.logger, 0, "init", err)
		return nil, fmt.Errorf("initialize task file: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(0, "init", "created "+in.StorePath)
	}

	return out, nil
}
