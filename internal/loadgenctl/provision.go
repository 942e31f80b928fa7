package loadgenctl

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/loadgenproject/loadgenctl/pkg/client/agent"
	"github.com/loadgenproject/loadgenctl/pkg/client/compute"
)

// Provision creates one load-generation instance aimed at the given target
// address and returns the generated job name and the instance's external IP.
// The target must answer over HTTP before anything is provisioned. Provider
// failures are not retried here; retries belong to the caller.
func (a *App) Provision(zone string, target string, scenario string) (string, string, error) {
	cfg := a.Params.Config

	if err := a.Params.Agent.Ping(agent.NormalizeURL(target)); err != nil {
		return "", "", errors.WithStack(&ErrUnreachableTarget{Target: target, Cause: err})
	}

	name, err := a.generateJobName()
	if err != nil {
		return "", "", err
	}

	out, err := a.Params.Compute.Create(compute.CreateRequest{
		Name:           name,
		Zone:           zone,
		MachineType:    cfg.MachineType,
		ContainerImage: cfg.ContainerImage,
		NetworkTag:     cfg.NetworkTag,
		TargetAddress:  target,
		Scenario:       scenario,
		AgentPort:      cfg.AgentPort,
	})
	if err != nil {
		return "", "", errors.Wrapf(err, "provider failed to create instance %s in %s", name, zone)
	}

	// The create response lists the assigned external IP last. Describe's
	// typed field access is preferred for later lookups.
	ip, err := compute.ExtractExternalIP(out)
	if err != nil {
		return "", "", errors.Wrapf(err, "instance %s was created but its address could not be determined", name)
	}

	fmt.Fprintf(a.Out, "Created job %s in %s with external IP %s\n", name, zone, ip)
	return name, ip, nil
}
