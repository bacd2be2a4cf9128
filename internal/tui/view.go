package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/runoshun/task-cli/internal/domain"
)

const (
	statusWidth  = 12
	minDescWidth = 10
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == ModeHelp {
		return m.styles.App.Render(m.viewHelp())
	}
	return m.styles.App.Render(m.viewMain())
}

// viewMain renders the task list with the active dialog.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	b.WriteString(m.viewTaskList())
	b.WriteString("\n")

	switch m.mode {
	case ModeAdd:
		b.WriteString(m.styles.InputPrompt.Render("New task: "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case ModeEdit:
		b.WriteString(m.styles.InputPrompt.Render(fmt.Sprintf("Edit #%d: ", m.editTaskID)))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case ModeConfirm:
		b.WriteString(m.styles.Dialog.Render(fmt.Sprintf("Delete task #%d? (y/n)", m.confirmTaskID)))
		b.WriteString("\n")
	case ModeNormal, ModeHelp:
	}

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString(m.styles.Notice.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m *Model) viewHeader() string {
	filter := "all"
	if m.filter != nil {
		filter = m.filter.Keyword()
	}
	visible := len(m.visibleTasks())
	return m.styles.Header.Render("task-cli") + "  " +
		m.styles.HeaderFilter.Render(fmt.Sprintf("[%s] %d/%d tasks", filter, visible, len(m.tasks)))
}

func (m *Model) viewTaskList() string {
	visible := m.visibleTasks()
	if len(visible) == 0 {
		if m.filter != nil {
			return m.styles.Empty.Render(fmt.Sprintf("No task with status %s.", *m.filter)) + "\n"
		}
		return m.styles.Empty.Render("No tasks.") + "\n"
	}

	var b strings.Builder
	for i, task := range visible {
		b.WriteString(m.renderTaskItem(task, i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderTaskItem(task *domain.Task, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	id := m.styles.TaskID.Render(fmt.Sprintf("#%-4d", task.ID))
	status := m.styles.StatusStyle(task.Status).Render(StatusIcon(task.Status) + " " + task.Status.Keyword())

	// App padding (4) + cursor (2) + id (6) + status (12) + spaces
	width := m.width - 4 - 2 - 6 - statusWidth - 2
	width = max(width, minDescWidth)
	desc := truncate.StringWithTail(strings.Join(strings.Fields(task.Description), " "), uint(width), "…")

	switch {
	case selected:
		desc = m.styles.TaskSelected.Render(desc)
	case task.Status == domain.StatusDone:
		desc = m.styles.TaskDone.Render(desc)
	default:
		desc = m.styles.TaskNormal.Render(desc)
	}

	return cursor + id + " " + status + " " + desc
}

func (m *Model) viewFooter() string {
	if m.mode.IsInputMode() {
		return m.styles.Footer.Render("enter save • esc cancel")
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Keybindings"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("? or esc to close"))
	return b.String()
}
