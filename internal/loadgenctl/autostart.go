package loadgenctl

import (
	"fmt"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/loadgenproject/loadgenctl/pkg/client/agent"
)

// Autostart provisions a job against the given target and ramps it up to
// the configured default user count. Ingress setup is a hard precondition:
// an agent behind a closed firewall can never become reachable. The
// readiness wait blocks for at most the configured budget; exhausting it is
// reported with guidance but does not fail the command, since the agent
// applies load asynchronously anyway.
func (a *App) Autostart(target string, zone string) error {
	cfg := a.Params.Config

	if err := a.EnsureIngress(); err != nil {
		return errors.Wrap(err, "could not open ingress for the load agent")
	}

	if zone == "" {
		picked, err := a.pickZone()
		if err != nil {
			return err
		}
		zone = picked
		fmt.Fprintf(a.Out, "No zone specified, using %s\n", zone)
	}

	name, ip, err := a.Provision(zone, target, "")
	if err != nil {
		var unreachable *ErrUnreachableTarget
		if errors.As(err, &unreachable) {
			return err
		}
		return errors.Wrapf(err, "provisioning failed, re-run 'loadgenctl autostart %s --zone %s' to try again", target, zone)
	}

	attempts := uint(cfg.AutostartWait / cfg.RetryInterval)
	fmt.Fprintf(a.Out, "Waiting up to %s for the agent on %s to accept connections\n", cfg.AutostartWait, ip)
	err = retry.Do(
		func() error { return a.Params.Agent.Swarm(ip, cfg.AutostartUsers) },
		retry.Attempts(attempts),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(agent.IsUnreachable),
	)
	if err != nil {
		log.Warnf("could not confirm load setting for job %s: %s", name, err)
		fmt.Fprintf(a.Out, "Job %s was created but the agent has not accepted the load instruction yet.\n", name)
		fmt.Fprintf(a.Out, "Run 'loadgenctl update %s %d --zone %s' once the instance has finished booting.\n", name, cfg.AutostartUsers, zone)
		return nil
	}

	fmt.Fprintf(a.Out, "Job %s is ramping up to %d users against %s\n", name, cfg.AutostartUsers, target)
	return nil
}
