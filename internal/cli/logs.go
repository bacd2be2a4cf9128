package cli

import (
	"fmt"

	"github.com/runoshun/task-cli/internal/app"
	"github.com/runoshun/task-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// newLogsCommand creates the logs command for viewing the log file.
func newLogsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Lines int
	}

	cmd := &cobra.Command{
		Use:   "logs [id]",
		Short: "Show the log file",
		Long: `Show entries from the log file set by [log] file in the config.

With an ID, only entries about that task are shown.

Examples:
  task-cli logs
  task-cli logs -n 20
  task-cli logs 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.ShowLogsInput{Lines: opts.Lines}
			if len(args) == 1 {
				id, err := parseTaskID(args[0])
				if err != nil {
					return fmt.Errorf("invalid task ID: %w", err)
				}
				input.TaskID = id
			}

			uc := c.ShowLogsUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Lines, "lines", "n", 0, "Number of lines to show from the end (0 = all)")

	return cmd
}
