package compute

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrNoAddress indicates the instance exists but has no external IP yet.
var ErrNoAddress = errors.New("instance has no external IP address")

// DescribeAPI resolves an instance's current external IP address.
type DescribeAPI func(name string, zone string) (string, error)

func Describe(run CommandRunner, timeout time.Duration) DescribeAPI {
	return func(name string, zone string) (string, error) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		out, err := run(ctx,
			"compute", "instances", "describe", name,
			"--zone", zone,
			"--format", "value(networkInterfaces[0].accessConfigs[0].natIP)",
		)
		if err != nil {
			return "", err
		}
		ip := strings.TrimSpace(out)
		if ip == "" {
			return "", errors.WithStack(ErrNoAddress)
		}
		return ip, nil
	}
}
