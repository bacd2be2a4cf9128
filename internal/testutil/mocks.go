// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/runoshun/task-cli/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks     map[int]*domain.Task
	Clock     domain.Clock
	AddErr    error
	UpdateErr error
	DeleteErr error
	StatusErr error
	ListErr   error
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks: make(map[int]*domain.Task),
		Clock: &MockClock{NowTime: time.Date(2025, 1, 15, 9, 0, 0, 0, time.Local)},
	}
}

// Ensure MockTaskRepository implements domain.TaskRepository interface.
var _ domain.TaskRepository = (*MockTaskRepository)(nil)

// Seed stores a task with the given ID and status directly.
func (m *MockTaskRepository) Seed(id int, description string, status domain.Status) *domain.Task {
	task := domain.NewTask(id, description, m.Clock.Now())
	task.Status = status
	m.Tasks[id] = task
	return task
}

// AddTask adds a task with ID max+1.
func (m *MockTaskRepository) AddTask(description string) (int, error) {
	return m.AddTaskWithStatus(description, domain.StatusTodo)
}

// AddTaskWithStatus adds a task with ID max+1 and the given status.
func (m *MockTaskRepository) AddTaskWithStatus(description string, status domain.Status) (int, error) {
	if m.AddErr != nil {
		return 0, m.AddErr
	}
	if !status.IsValid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	id := 1
	for existing := range m.Tasks {
		if existing >= id {
			id = existing + 1
		}
	}
	task := domain.NewTask(id, description, m.Clock.Now())
	task.Status = status
	m.Tasks[id] = task
	return id, nil
}

// UpdateTask replaces a task's description.
func (m *MockTaskRepository) UpdateTask(id int, description string) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	task.SetDescription(description, m.Clock.Now())
	return nil
}

// DeleteTask removes a task by ID.
func (m *MockTaskRepository) DeleteTask(id int) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.Tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// MarkInProgress sets the status to in progress.
func (m *MockTaskRepository) MarkInProgress(id int) error {
	return m.SetStatus(id, domain.StatusInProgress)
}

// MarkDone sets the status to done.
func (m *MockTaskRepository) MarkDone(id int) error {
	return m.SetStatus(id, domain.StatusDone)
}

// SetStatus sets a task's status.
func (m *MockTaskRepository) SetStatus(id int, status domain.Status) error {
	if m.StatusErr != nil {
		return m.StatusErr
	}
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	task, ok := m.Tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	task.SetStatus(status, m.Clock.Now())
	return nil
}

// ListAll returns all tasks in ascending ID order.
func (m *MockTaskRepository) ListAll() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.sorted(nil), nil
}

// ListByStatus returns tasks with the given status in ascending ID order.
func (m *MockTaskRepository) ListByStatus(status domain.Status) ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.sorted(func(t *domain.Task) bool { return t.Status == status }), nil
}

func (m *MockTaskRepository) sorted(keep func(*domain.Task) bool) []*domain.Task {
	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		if keep == nil || keep(t) {
			tasks = append(tasks, t)
		}
	}
	slices.SortFunc(tasks, func(a, b *domain.Task) int { return a.ID - b.ID })
	return tasks
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	InitErr     error
	Called      bool
	Initialized bool
}

// IsInitialized implements domain.StoreInitializer.
func (m *MockStoreInitializer) IsInitialized() bool {
	return m.Initialized
}

// Initialize implements domain.StoreInitializer.
func (m *MockStoreInitializer) Initialize() error {
	m.Called = true
	if m.InitErr != nil {
		return m.InitErr
	}
	m.Initialized = true
	return nil
}

// LogEntry is a single entry recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID int, category, msg string) {
	m.record("DEBUG", taskID, category, msg)
}

// Info records an info entry.
func (m *MockLogger) Info(taskID int, category, msg string) {
	m.record("INFO", taskID, category, msg)
}

// Warn records a warn entry.
func (m *MockLogger) Warn(taskID int, category, msg string) {
	m.record("WARN", taskID, category, msg)
}

// Error records an error entry.
func (m *MockLogger) Error(taskID int, category, msg string) {
	m.record("ERROR", taskID, category, msg)
}

func (m *MockLogger) record(level string, taskID int, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Levels returns the recorded levels in order.
func (m *MockLogger) Levels() []string {
	levels := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		levels = append(levels, e.Level)
	}
	return levels
}

// MockTaskRenderer is a test double for domain.TaskRenderer.
// It writes one "id:status:description" line per task.
type MockTaskRenderer struct {
	RenderErr error
	Format    domain.OutputFormat
	Calls     int
}

// Ensure MockTaskRenderer implements domain.TaskRenderer interface.
var _ domain.TaskRenderer = (*MockTaskRenderer)(nil)

// Render records the call and writes a simple line format.
func (m *MockTaskRenderer) Render(w io.Writer, tasks []*domain.Task, format domain.OutputFormat) error {
	m.Calls++
	m.Format = format
	if m.RenderErr != nil {
		return m.RenderErr
	}
	for _, t := range tasks {
		if _, err := fmt.Fprintf(w, "%d:%s:%s\n", t.ID, t.Status, t.Description); err != nil {
			return err
		}
	}
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitProjectErr    error
	InitGlobalErr     error
	Info              domain.ConfigInfo
	InitProjectCalled bool
	InitGlobalCalled  bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		Info: domain.ConfigInfo{
			GlobalPath:  "/home/test/.config/task-cli/config.toml",
			ProjectPath: "/work/.task-cli.toml",
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetInfo returns the configured info.
func (m *MockConfigManager) GetInfo() domain.ConfigInfo {
	return m.Info
}

// InitProject records the call and returns configured error.
func (m *MockConfigManager) InitProject() error {
	m.InitProjectCalled = true
	return m.InitProjectErr
}

// InitGlobal records the call and returns configured error.
func (m *MockConfigManager) InitGlobal() error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}
