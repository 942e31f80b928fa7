package cmd

import (
	"github.com/spf13/cobra"

	"github.com/loadgenproject/loadgenctl/internal/loadgenctl"
)

func autostartCmd(app *loadgenctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart target_address",
		Short: "Provision a load-generation job and ramp it up to the default user count.",
		Long: `Opens ingress for the load agent, provisions one instance aimed at the
given target address and instructs it to simulate the default number of
users once its agent accepts connections.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, _ := cmd.Flags().GetString("zone")
			return app.Autostart(args[0], zone)
		},
	}
	cmd.Flags().String("zone", "", "zone to create the instance in (a random default zone if omitted)")
	return cmd
}
