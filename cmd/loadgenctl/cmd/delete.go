package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/loadgenproject/loadgenctl/internal/loadgenctl"
)

func deleteCmd(app *loadgenctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Tear down a load-generation job, or all of them with --all.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			if all {
				return app.DeleteAll()
			}
			if len(args) != 1 {
				return errors.New("a job name is required unless --all is set")
			}
			zone, _ := cmd.Flags().GetString("zone")
			if zone == "" {
				return errors.New("--zone is required when deleting a single job")
			}
			return app.Delete(args[0], zone)
		},
	}
	cmd.Flags().String("zone", "", "zone the instance was created in")
	cmd.Flags().Bool("all", false, "delete every load-generation job")
	return cmd
}
