package loadgenctl

import (
	"fmt"

	"github.com/pkg/errors"
)

// EnsureIngress idempotently opens inbound TCP on the agent port for
// instances carrying the orchestrator's network tag. If the rule already
// exists nothing is created.
func (a *App) EnsureIngress() error {
	cfg := a.Params.Config
	if err := a.Params.Compute.FirewallDescribe(cfg.FirewallRule); err == nil {
		fmt.Fprintf(a.Out, "Ingress rule %s already exists\n", cfg.FirewallRule)
		return nil
	}
	if err := a.Params.Compute.FirewallCreate(cfg.FirewallRule, cfg.AgentPort, cfg.NetworkTag); err != nil {
		return errors.Wrapf(err, "error creating ingress rule %s", cfg.FirewallRule)
	}
	fmt.Fprintf(a.Out, "Opened ingress on tcp:%d for instances tagged %s\n", cfg.AgentPort, cfg.NetworkTag)
	return nil
}
