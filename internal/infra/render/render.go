// Package render implements domain.TaskRenderer for json, yaml and table output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/task-cli/internal/domain"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// DefaultDescriptionWidth is the widest description cell in table output.
const DefaultDescriptionWidth = 60

// Renderer writes task lists in the requested format.
// Fields are ordered to minimize memory padding.
type Renderer struct {
	isTerminal       func(io.Writer) bool
	color            domain.ColorMode
	descriptionWidth int
}

// New creates a Renderer with the given color mode.
func New(color domain.ColorMode) *Renderer {
	return &Renderer{
		color:            color,
		descriptionWidth: DefaultDescriptionWidth,
		isTerminal:       isTerminal,
	}
}

// Ensure Renderer implements domain.TaskRenderer interface.
var _ domain.TaskRenderer = (*Renderer)(nil)

// Render writes tasks to w in the given format.
func (r *Renderer) Render(w io.Writer, tasks []*domain.Task, format domain.OutputFormat) error {
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	switch format {
	case domain.FormatJSON:
		return renderJSON(w, tasks)
	case domain.FormatYAML:
		return renderYAML(w, tasks)
	case domain.FormatTable:
		return r.renderTable(w, tasks)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}

func renderJSON(w io.Writer, tasks []*domain.Task) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, tasks []*domain.Task) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

// colorEnabled resolves the color mode for the given writer.
func (r *Renderer) colorEnabled(w io.Writer) bool {
	switch r.color {
	case domain.ColorAlways:
		return true
	case domain.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return r.isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
