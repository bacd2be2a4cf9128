// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"path/filepath"

	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/infra/config"
	"github.com/runoshun/task-cli/internal/infra/jsonstore"
	"github.com/runoshun/task-cli/internal/infra/logging"
	"github.com/runoshun/task-cli/internal/infra/render"
	"github.com/runoshun/task-cli/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir   string // Working directory; relative paths resolve against it
	StorePath string // Path to the task file
	LogPath   string // Path to the log file (empty = file logging disabled)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	StoreInitializer domain.StoreInitializer
	Renderer         domain.TaskRenderer
	Clock            domain.Clock
	Logger           domain.Logger
	ConfigLoader     domain.ConfigLoader
	ConfigManager    domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config
	logCloser io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// Configuration is loaded from the global and project config files.
// Warnings and errors are logged to stderr.
func New(dir string, stderr io.Writer) (*Container, error) {
	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	cfg := Config{
		WorkDir:   dir,
		StorePath: resolvePath(dir, appConfig.Store.Path),
	}
	if appConfig.Log.File != "" {
		cfg.LogPath = resolvePath(dir, appConfig.Log.File)
	}

	logger := logging.New(cfg.LogPath, stderr, logging.ParseLevel(appConfig.Log.Level))

	c := &Container{
		Renderer:      render.New(appConfig.Output.Color),
		Clock:         domain.RealClock{},
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		AppConfig:     appConfig,
		logCloser:     logger,
		Config:        cfg,
	}
	c.UseStore(cfg.StorePath)

	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskRepository, storeInit domain.StoreInitializer, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:            tasks,
		StoreInitializer: storeInit,
		Renderer:         render.New(domain.ColorNever),
		Clock:            clock,
		Logger:           logger,
		AppConfig:        domain.NewDefaultConfig(),
		Config:           cfg,
	}
}

// UseStore binds the task repository to the JSON file at path.
// A relative path is resolved against the working directory.
func (c *Container) UseStore(path string) {
	storeCfg := domain.NewDefaultConfig().Store
	if c.AppConfig != nil {
		storeCfg = c.AppConfig.Store
	}

	c.Config.StorePath = resolvePath(c.Config.WorkDir, path)
	store := jsonstore.New(c.Config.StorePath, c.Clock,
		jsonstore.WithLock(storeCfg.Lock),
		jsonstore.WithValidation(storeCfg.Validate),
	)
	c.Tasks = store
	c.StoreInitializer = store
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.logCloser == nil {
		return nil
	}
	return c.logCloser.Close()
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer, c.Logger)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Logger)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// MarkTaskUseCase returns a new MarkTask use case.
func (c *Container) MarkTaskUseCase() *usecase.MarkTask {
	return usecase.NewMarkTask(c.Tasks, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Renderer, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ImportTasksUseCase returns a new ImportTasks use case reading from the task file at sourcePath.
// A relative sourcePath is resolved against the working directory.
func (c *Container) ImportTasksUseCase(sourcePath string) *usecase.ImportTasks {
	storeCfg := domain.NewDefaultConfig().Store
	if c.AppConfig != nil {
		storeCfg = c.AppConfig.Store
	}
	source := jsonstore.New(resolvePath(c.Config.WorkDir, sourcePath), c.Clock,
		jsonstore.WithLock(storeCfg.Lock),
		jsonstore.WithValidation(storeCfg.Validate),
	)
	return usecase.NewImportTasks(source, c.Tasks, c.Logger)
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Config.LogPath)
}
