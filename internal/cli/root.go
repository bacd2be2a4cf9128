// Package cli provides the command-line interface for task-cli.
package cli

import (
	"fmt"

	"github.com/runoshun/task-cli/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
)

const usageExamples = `  task-cli add "Task description"
  task-cli update <id> "New description"
  task-cli delete <id>
  task-cli mark-in-progress <id>
  task-cli mark-done <id>
  task-cli list
  task-cli list done
  task-cli list todo
  task-cli list in-progress`

// NewRootCommand creates the root command for task-cli.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var storeFile string

	root := &cobra.Command{
		Use:   "task-cli",
		Short: "Track tasks in a JSON file",
		Long: `task-cli records short textual tasks, assigns each a numeric ID,
tracks a status (todo, in-progress, done) and keeps everything in a
single JSON file between invocations.

The task file is tasks.json in the current directory unless overridden
by --file, the TASK_CLI_FILE environment variable or the [store] path
setting in .task-cli.toml.`,
		Example: usageExamples,
		Version: version,
		// Unknown commands fall through to RunE, which prints usage help
		Args: cobra.ArbitraryArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			if storeFile != "" {
				c.UseStore(storeFile)
			}

			if c.AppConfig != nil {
				for _, w := range c.AppConfig.Warnings {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s\n\n", args[0])
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVarP(&storeFile, "file", "f", "", "Task file path (overrides TASK_CLI_FILE and config)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
	)

	// Setup commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	logsCmd := newLogsCommand(c)
	logsCmd.GroupID = groupSetup

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	updateCmd := newUpdateCommand(c)
	updateCmd.GroupID = groupTask

	deleteCmd := newDeleteCommand(c)
	deleteCmd.GroupID = groupTask

	markInProgressCmd := newMarkCommand(c, markInProgress)
	markInProgressCmd.GroupID = groupTask

	markDoneCmd := newMarkCommand(c, markDone)
	markDoneCmd.GroupID = groupTask

	markTodoCmd := newMarkCommand(c, markTodo)
	markTodoCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	// Add subcommands
	root.AddCommand(
		initCmd,
		configCmd,
		logsCmd,
		addCmd,
		updateCmd,
		deleteCmd,
		markInProgressCmd,
		markDoneCmd,
		markTodoCmd,
		listCmd,
		importCmd,
		tuiCmd,
	)

	return root
}
