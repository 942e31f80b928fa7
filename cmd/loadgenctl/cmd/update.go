package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/loadgenproject/loadgenctl/internal/loadgenctl"
)

func updateCmd(app *loadgenctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update name num_users",
		Short: "Set the number of simulated users a job runs.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Errorf("num_users must be an integer, got %q", args[1])
			}
			zone, _ := cmd.Flags().GetString("zone")
			return app.SetUsers(args[0], zone, users)
		},
	}
	cmd.Flags().String("zone", "", "zone the instance was created in")
	cmd.MarkFlagRequired("zone")
	return cmd
}
