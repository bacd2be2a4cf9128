package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
	"github.com/runoshun/task-cli/internal/domain"
)

const (
	tableTimeLayout = "2006-01-02 15:04"
	ellipsis        = "…"
)

var tableHeaders = []string{"ID", "STATUS", "DESCRIPTION", "CREATED", "UPDATED"}

// Status colors (ANSI 256).
var statusColors = map[domain.Status]lipgloss.Color{
	domain.StatusTodo:       lipgloss.Color("245"),
	domain.StatusInProgress: lipgloss.Color("214"),
	domain.StatusDone:       lipgloss.Color("42"),
}

func (r *Renderer) renderTable(w io.Writer, tasks []*domain.Task) error {
	lr := lipgloss.NewRenderer(w)
	if r.colorEnabled(w) {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}

	headerStyle := lr.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lr.NewStyle().Padding(0, 1)
	borderStyle := lr.NewStyle().Foreground(lipgloss.Color("240"))

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		status := t.Status.Display()
		if c, ok := statusColors[t.Status]; ok {
			status = lr.NewStyle().Foreground(c).Render(status)
		}
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			status,
			r.formatDescription(t.Description),
			t.CreatedAt.Format(tableTimeLayout),
			t.UpdatedAt.Format(tableTimeLayout),
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// formatDescription flattens a description to one line and truncates it.
func (r *Renderer) formatDescription(description string) string {
	line := strings.Join(strings.Fields(description), " ")
	if r.descriptionWidth <= 0 {
		return line
	}
	return truncate.StringWithTail(line, uint(r.descriptionWidth), ellipsis)
}
