package cmd

import (
	"github.com/spf13/cobra"

	"github.com/loadgenproject/loadgenctl/internal/loadgenctl"
)

func createCmd(app *loadgenctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create target_address",
		Short: "Provision a load-generation job without setting any load.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, _ := cmd.Flags().GetString("zone")
			scenario, _ := cmd.Flags().GetString("scenario")
			_, _, err := app.Provision(zone, args[0], scenario)
			return err
		},
	}
	cmd.Flags().String("zone", "", "zone to create the instance in")
	cmd.Flags().String("scenario", "", "traffic scenario for the load agent to run")
	cmd.MarkFlagRequired("zone")
	return cmd
}
