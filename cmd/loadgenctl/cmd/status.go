package cmd

import (
	"github.com/spf13/cobra"

	"github.com/loadgenproject/loadgenctl/internal/loadgenctl"
)

func statusCmd(app *loadgenctl.App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current load statistics of every job.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.StatusAll()
		},
	}
}
