package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/task-cli/internal/app"
	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// Result messages.
const (
	msgTaskAdded    = "Task added successfully (ID: %d)"
	msgAddFailed    = "Error adding task."
	msgTaskUpdated  = "Task updated."
	msgTaskDeleted  = "Task deleted."
	msgTaskNotFound = "Task not found."
	msgMarked       = "Task marked as %s."
	msgUnknownState = "Unknown status: %s"
	msgImported     = "Imported %d of %d task(s) from %s"
)

// markAction describes one of the mark-* commands.
type markAction struct {
	name   string
	label  string
	status domain.Status
}

var (
	markInProgress = markAction{name: "mark-in-progress", label: "in progress", status: domain.StatusInProgress}
	markDone       = markAction{name: "mark-done", label: "done", status: domain.StatusDone}
	markTodo       = markAction{name: "mark-todo", label: "todo", status: domain.StatusTodo}
)

// usageArgs requires at least n arguments and reports the usage line otherwise.
func usageArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("missing arguments\nUsage: task-cli %s", usage)
		}
		return nil
	}
}

// printNotFound reports whether err is a not-found error and prints the message if so.
func printNotFound(cmd *cobra.Command, err error) bool {
	if !errors.Is(err, domain.ErrTaskNotFound) {
		return false
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), msgTaskNotFound)
	return true
}

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new task",
		Long: `Add a new task with status todo.

The new task gets the next ID (largest existing ID + 1). Multiple
arguments are joined with single spaces.

Examples:
  task-cli add "Buy groceries"
  task-cli add Buy groceries`,
		Args: usageArgs(1, `add "Task description"`),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Description: strings.Join(args, " "),
			})
			if err != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), msgAddFailed)
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), msgTaskAdded+"\n", out.TaskID)
			return nil
		},
	}
}

// newUpdateCommand creates the update command.
func newUpdateCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <description>",
		Short: "Replace a task's description",
		Long: `Replace the description of an existing task.

Examples:
  task-cli update 1 "Buy groceries and cook dinner"
  task-cli update "#1" "Buy groceries"`,
		Args: usageArgs(2, `update <id> "New description"`),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.UpdateTaskUseCase()
			_, err = uc.Execute(cmd.Context(), usecase.UpdateTaskInput{
				TaskID:      taskID,
				Description: strings.Join(args[1:], " "),
			})
			if err != nil {
				if printNotFound(cmd, err) {
					return nil
				}
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), msgTaskUpdated)
			return nil
		},
	}
}

// newDeleteCommand creates the delete command.
func newDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long: `Delete a task from the task file.

Deleted IDs are reused only when they were the largest ID.

Examples:
  task-cli delete 1
  task-cli delete "#1"`,
		Args: usageArgs(1, "delete <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.DeleteTaskUseCase()
			_, err = uc.Execute(cmd.Context(), usecase.DeleteTaskInput{
				TaskID: taskID,
			})
			if err != nil {
				if printNotFound(cmd, err) {
					return nil
				}
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), msgTaskDeleted)
			return nil
		},
	}
}

// newMarkCommand creates one of the mark-* commands.
func newMarkCommand(c *app.Container, action markAction) *cobra.Command {
	return &cobra.Command{
		Use:   action.name + " <id>",
		Short: fmt.Sprintf("Mark a task as %s", action.label),
		Long: fmt.Sprintf(`Set a task's status to %s.

Any status may follow any other; marking a task with its current
status only refreshes its update time.

Examples:
  task-cli %s 1`, action.status.Keyword(), action.name),
		Args: usageArgs(1, action.name+" <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.MarkTaskUseCase()
			_, err = uc.Execute(cmd.Context(), usecase.MarkTaskInput{
				TaskID: taskID,
				Status: action.status,
			})
			if err != nil {
				if printNotFound(cmd, err) {
					return nil
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), msgMarked+"\n", action.label)
			return nil
		},
	}
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status domain.Status
		Format domain.OutputFormat
	}

	cmd := &cobra.Command{
		Use:   "list [todo|in-progress|done]",
		Short: "List tasks",
		Long: `List tasks in ascending ID order, optionally filtered by status.

The status may be given as a positional keyword or with --status.
Output defaults to the [output] format setting (json unless configured).

Examples:
  task-cli list
  task-cli list done
  task-cli list --status in-progress -o table`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.ListTasksInput{
				Format: c.AppConfig.Output.Format,
			}
			if cmd.Flags().Changed("output") {
				input.Format = opts.Format
			}

			if opts.Status != "" {
				status := opts.Status
				input.Status = &status
			}
			if len(args) == 1 {
				status, err := domain.ParseStatus(args[0])
				if err != nil {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), msgUnknownState+"\n", args[0])
					return nil
				}
				input.Status = &status
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}

	cmd.Flags().VarP(&formatValue{format: &opts.Format}, "output", "o", "Output format ("+formatNames()+")")
	cmd.Flags().Var(&statusValue{status: &opts.Status}, "status", "Filter by status ("+strings.Join(domain.StatusKeywords(), "|")+")")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status domain.Status
	}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from another task file",
		Long: `Copy tasks from another task file into the current one.

Imported tasks are appended with new IDs. Descriptions and statuses
are kept; createdAt and updatedAt are set to the time of the import.
The source file is never modified.

Examples:
  task-cli import ~/old-tasks.json
  task-cli import --status todo backlog.json`,
		Args: usageArgs(1, "import <file>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.ImportTasksInput{}
			if opts.Status != "" {
				status := opts.Status
				input.Status = &status
			}

			uc := c.ImportTasksUseCase(args[0])
			out, err := uc.Execute(cmd.Context(), input)
			if out != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), msgImported+"\n", out.Imported, out.Total, args[0])
			}
			return err
		},
	}

	cmd.Flags().Var(&statusValue{status: &opts.Status}, "status", "Import only tasks with this status ("+strings.Join(domain.StatusKeywords(), "|")+")")

	return cmd
}

// parseTaskID parses a task ID string, accepting an optional "#" prefix.
func parseTaskID(s string) (int, error) {
	// Remove leading # if present
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTaskID, s)
	}
	return id, nil
}
