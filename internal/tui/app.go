package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/task-cli/internal/app"
	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error
	filter    *domain.Status // nil = all tasks

	// State
	tasks  []*domain.Task
	notice string

	// Components
	keys  KeyMap
	help  help.Model
	input textinput.Model

	styles Styles

	// Numeric state (smaller types last)
	mode          Mode
	cursor        int
	editTaskID    int
	confirmTaskID int
	width         int
	height        int
}

var _ tea.Model = (*Model)(nil)

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task description"
	ti.CharLimit = 500

	return &Model{
		container: c,
		mode:      ModeNormal,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		input:     ti,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks returns a command that loads all tasks from the task file.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

func (m *Model) addTask(description string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
			Description: description,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskAdded{TaskID: out.TaskID}
	}
}

func (m *Model) updateTask(taskID int, description string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.UpdateTaskUseCase().Execute(context.Background(), usecase.UpdateTaskInput{
			TaskID:      taskID,
			Description: description,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskUpdated{TaskID: taskID}
	}
}

func (m *Model) deleteTask(taskID int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{
			TaskID: taskID,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: taskID}
	}
}

func (m *Model) markTask(taskID int, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.MarkTaskUseCase().Execute(context.Background(), usecase.MarkTaskInput{
			TaskID: taskID,
			Status: status,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskStatusUpdated{TaskID: taskID, Status: out.Status}
	}
}

// visibleTasks returns the tasks matching the current filter.
func (m *Model) visibleTasks() []*domain.Task {
	if m.filter == nil {
		return m.tasks
	}
	visible := make([]*domain.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if t.Status == *m.filter {
			visible = append(visible, t)
		}
	}
	return visible
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	visible := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return visible[m.cursor]
}

// clampCursor keeps the cursor inside the visible list.
func (m *Model) clampCursor() {
	n := len(m.visibleTasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// cycleFilter advances the filter: all, todo, in-progress, done, all.
func (m *Model) cycleFilter() {
	statuses := domain.AllStatuses()
	if m.filter == nil {
		s := statuses[0]
		m.filter = &s
		return
	}
	for i, s := range statuses {
		if s == *m.filter {
			if i+1 == len(statuses) {
				m.filter = nil
				return
			}
			next := statuses[i+1]
			m.filter = &next
			return
		}
	}
	m.filter = nil
}
