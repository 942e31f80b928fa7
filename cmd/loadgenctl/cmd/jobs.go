package cmd

import (
	"github.com/spf13/cobra"

	"github.com/loadgenproject/loadgenctl/internal/loadgenctl"
)

func jobsCmd(app *loadgenctl.App) *cobra.Command {
	return &cobra.Command{
		Use:   "jobs",
		Short: "List the load-generation jobs the provider currently runs.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Jobs()
		},
	}
}
