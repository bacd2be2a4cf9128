package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/task-cli/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Text    lipgloss.Color
	Cursor  lipgloss.Color

	// Status colors
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	Done       lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Text:    lipgloss.Color("#DFE6E9"), // Light gray
	Cursor:  lipgloss.Color("#FFEAA7"), // Yellow

	Todo:       lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Done:       lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Header       lipgloss.Style
	HeaderFilter lipgloss.Style
	TaskNormal   lipgloss.Style
	TaskSelected lipgloss.Style
	TaskID       lipgloss.Style
	TaskDone     lipgloss.Style
	Empty        lipgloss.Style
	InputPrompt  lipgloss.Style
	Dialog       lipgloss.Style
	ErrorMsg     lipgloss.Style
	Notice       lipgloss.Style
	Footer       lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		HeaderFilter: lipgloss.NewStyle().Foreground(Colors.Muted),
		TaskNormal:   lipgloss.NewStyle().Foreground(Colors.Text),
		TaskSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Cursor),
		TaskID:   lipgloss.NewStyle().Foreground(Colors.Muted),
		TaskDone: lipgloss.NewStyle().Foreground(Colors.Muted).Strikethrough(true),
		Empty:    lipgloss.NewStyle().Foreground(Colors.Muted).Italic(true),
		InputPrompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Error).
			Padding(0, 1),
		ErrorMsg: lipgloss.NewStyle().Foreground(Colors.Error),
		Notice:   lipgloss.NewStyle().Foreground(Colors.Done),
		Footer:   lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}

// StatusStyle returns the style for a status label.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	base := lipgloss.NewStyle().Width(statusWidth)
	switch status {
	case domain.StatusTodo:
		return base.Foreground(Colors.Todo)
	case domain.StatusInProgress:
		return base.Foreground(Colors.InProgress)
	case domain.StatusDone:
		return base.Foreground(Colors.Done)
	default:
		return base.Foreground(Colors.Muted)
	}
}

// StatusIcon returns the icon for a status.
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusTodo:
		return "○"
	case domain.StatusInProgress:
		return "◐"
	case domain.StatusDone:
		return "●"
	default:
		return "?"
	}
}
