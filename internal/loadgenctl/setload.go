package loadgenctl

import (
	"fmt"

	"github.com/pkg/errors"
)

// SetUsers instructs the named job's agent to run the given number of
// simulated users. The range check happens before the provider is
// contacted. The swarm instruction itself is fire-and-forget: the agent
// ramps up asynchronously and we do not verify it applied the count.
func (a *App) SetUsers(name string, zone string, users int) error {
	cfg := a.Params.Config

	if users < 0 || users > cfg.MaxUsers {
		return errors.WithStack(&ErrInvalidUserCount{Count: users, Max: cfg.MaxUsers})
	}

	ip, err := a.Params.Compute.Describe(name, zone)
	if err != nil {
		return errors.Wrapf(err, "job %s in %s is not addressable", name, zone)
	}

	if err := a.Params.Agent.Ping(fmt.Sprintf("http://%s:%d/", ip, cfg.AgentPort)); err != nil {
		return errors.Wrapf(err, "the agent for job %s did not respond; the instance may still be booting, or ingress may be closed (run 'loadgenctl setup')", name)
	}

	if err := a.Params.Agent.Swarm(ip, users); err != nil {
		return errors.Wrapf(err, "error setting user count on job %s", name)
	}

	fmt.Fprintf(a.Out, "Instructed job %s to run %d users\n", name, users)
	return nil
}
