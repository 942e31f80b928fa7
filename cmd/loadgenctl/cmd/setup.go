package cmd

import (
	"github.com/spf13/cobra"

	"github.com/loadgenproject/loadgenctl/internal/loadgenctl"
)

func setupCmd(app *loadgenctl.App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Open ingress for the load agent port. Safe to run repeatedly.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.EnsureIngress()
		},
	}
}
