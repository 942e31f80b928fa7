package compute

import (
	"context"
	"time"
)

// DeleteAPI tears down an instance. The provider call is not retried.
type DeleteAPI func(name string, zone string) error

func Delete(run CommandRunner, timeout time.Duration) DeleteAPI {
	return func(name string, zone string) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		_, err := run(ctx,
			"compute", "instances", "delete", name,
			"--zone", zone,
			"--quiet",
		)
		return err
	}
}
