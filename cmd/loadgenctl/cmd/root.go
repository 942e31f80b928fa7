package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/loadgenproject/loadgenctl/internal/loadgenctl"
	"github.com/loadgenproject/loadgenctl/pkg/client"
	"github.com/loadgenproject/loadgenctl/pkg/client/agent"
	"github.com/loadgenproject/loadgenctl/pkg/client/compute"
)

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loadgenctl",
		Short: "loadgenctl starts, stops and monitors synthetic load-generation jobs.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			if err := client.LoadCommandlineArgsFromConfigFile(cfgFile); err != nil {
				return err
			}
			// version and help work without the provider CLI installed
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return compute.CheckPrerequisite()
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default is $HOME/.loadgenctl.yaml)")
	client.AddProviderCommandlineArgs(cmd)

	cmd.AddCommand(
		autostartCmd(withBackends(loadgenctl.New())),
		setupCmd(withBackends(loadgenctl.New())),
		createCmd(withBackends(loadgenctl.New())),
		updateCmd(withBackends(loadgenctl.New())),
		deleteCmd(withBackends(loadgenctl.New())),
		jobsCmd(withBackends(loadgenctl.New())),
		statusCmd(withBackends(loadgenctl.New())),
		versionCmd(loadgenctl.New()),
	)

	return cmd
}

// withBackends wires the gcloud-backed provider API and the agent HTTP
// client into the app. Provider details are resolved lazily so values bound
// from flags and config files are picked up after parsing.
func withBackends(app *loadgenctl.App) *loadgenctl.App {
	run := compute.GcloudRunner(func() *compute.ProviderDetails {
		return client.ExtractCommandlineProviderDetails()
	})
	timeout := app.Params.Config.ProviderTimeout
	app.Params.Compute = &loadgenctl.ComputeAPI{
		Create:           compute.Create(run, timeout),
		Describe:         compute.Describe(run, timeout),
		List:             compute.List(run, timeout),
		Delete:           compute.Delete(run, timeout),
		FirewallDescribe: compute.FirewallDescribe(run, timeout),
		FirewallCreate:   compute.FirewallCreate(run, timeout),
	}

	details := &agent.Details{
		Port:    app.Params.Config.AgentPort,
		Timeout: app.Params.Config.HTTPTimeout,
	}
	app.Params.Agent = &loadgenctl.AgentAPI{
		Swarm: agent.Swarm(details),
		Stats: agent.Stats(details),
		Ping:  agent.Ping(details),
	}
	return app
}

func Execute() {
	if err := RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
