package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/task-cli/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.clampCursor()
		return m, nil

	case MsgTaskAdded:
		m.notice = fmt.Sprintf("Task added successfully (ID: %d)", msg.TaskID)
		return m, m.loadTasks()

	case MsgTaskUpdated:
		m.notice = "Task updated."
		return m, m.loadTasks()

	case MsgTaskDeleted:
		m.notice = "Task deleted."
		return m, m.loadTasks()

	case MsgTaskStatusUpdated:
		m.notice = fmt.Sprintf("Task marked as %s.", statusLabel(msg.Status))
		return m, m.loadTasks()

	case MsgError:
		if errors.Is(msg.Err, domain.ErrTaskNotFound) {
			m.notice = "Task not found."
			return m, m.loadTasks()
		}
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the previous result
	m.err = nil
	m.notice = ""

	switch m.mode {
	case ModeAdd, ModeEdit:
		return m.handleInputMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeNormal:
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visibleTasks())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.cycleFilter()
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		m.input.Reset()
		return m, m.input.Focus()
	}

	task := m.SelectedTask()
	if task == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Edit):
		m.mode = ModeEdit
		m.editTaskID = task.ID
		m.input.SetValue(task.Description)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Delete):
		m.mode = ModeConfirm
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Todo):
		return m, m.markTask(task.ID, domain.StatusTodo)

	case key.Matches(msg, m.keys.InProgress):
		return m, m.markTask(task.ID, domain.StatusInProgress)

	case key.Matches(msg, m.keys.Done):
		return m, m.markTask(task.ID, domain.StatusDone)
	}

	return m, nil
}

func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.exitInput()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		description := m.input.Value()
		mode, taskID := m.mode, m.editTaskID
		m.exitInput()
		if mode == ModeEdit {
			return m, m.updateTask(taskID, description)
		}
		return m, m.addTask(description)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) exitInput() {
	m.mode = ModeNormal
	m.editTaskID = 0
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	taskID := m.confirmTaskID
	m.mode = ModeNormal
	m.confirmTaskID = 0

	if key.Matches(msg, m.keys.Confirm) {
		return m, m.deleteTask(taskID)
	}
	return m, nil
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
	}
	return m, nil
}

// statusLabel returns the wording used in result messages.
func statusLabel(status domain.Status) string {
	if status == domain.StatusInProgress {
		return "in progress"
	}
	return status.Keyword()
}
