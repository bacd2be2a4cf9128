package cli

import (
	"fmt"

	"github.com/runoshun/task-cli/internal/app"
	"github.com/runoshun/task-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty task file",
		Long: `Create an empty task file at the configured path.

An existing task file is left untouched. Other commands create the
file on first write, so running init is optional.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitStoreUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitStoreInput{
				StorePath: c.Config.StorePath,
			})
			if err != nil {
				return err
			}

			if out.AlreadyInitialized {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task file already exists: %s\n", out.StorePath)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized task file: %s\n", out.StorePath)
			return nil
		},
	}
}
