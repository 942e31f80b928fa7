package compute

import (
	"context"
	"fmt"
	"time"
)

// FirewallDescribeAPI reports whether the named ingress rule exists; a nil
// error means it does.
type FirewallDescribeAPI func(rule string) error

// FirewallCreateAPI opens inbound TCP on the given port for instances
// carrying the given network tag.
type FirewallCreateAPI func(rule string, port int, tag string) error

func FirewallDescribe(run CommandRunner, timeout time.Duration) FirewallDescribeAPI {
	return func(rule string) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		_, err := run(ctx, "compute", "firewall-rules", "describe", rule)
		return err
	}
}

func FirewallCreate(run CommandRunner, timeout time.Duration) FirewallCreateAPI {
	return func(rule string, port int, tag string) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		_, err := run(ctx,
			"compute", "firewall-rules", "create", rule,
			"--allow", fmt.Sprintf("tcp:%d", port),
			"--target-tags", tag,
		)
		return err
	}
}
