package cmd

import (
	"github.com/spf13/cobra"

	"github.com/loadgenproject/loadgenctl/internal/loadgenctl"
)

func versionCmd(app *loadgenctl.App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Version()
		},
	}
}
