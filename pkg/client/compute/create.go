package compute

import (
	"context"
	"fmt"
	"time"
)

// CreateRequest describes the instance to provision. TargetAddress and
// Scenario are handed to the Load Agent container via its environment and
// arguments.
type CreateRequest struct {
	Name           string
	Zone           string
	MachineType    string
	ContainerImage string
	NetworkTag     string
	TargetAddress  string
	Scenario       string
	AgentPort      int
}

// CreateAPI provisions an instance and returns the provider's raw create
// output, which lists the assigned external IP last.
type CreateAPI func(req CreateRequest) (string, error)

// Create provisions synchronously; the provider can take minutes to boot an
// instance, so the timeout comes from the caller's configuration rather
// than the short per-call default used for HTTP.
func Create(run CommandRunner, timeout time.Duration) CreateAPI {
	return func(req CreateRequest) (string, error) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		args := []string{
			"compute", "instances", "create-with-container", req.Name,
			"--zone", req.Zone,
			"--machine-type", req.MachineType,
			"--tags", req.NetworkTag,
			"--container-image", req.ContainerImage,
			"--container-env", fmt.Sprintf("FRONTEND_ADDR=%s", req.TargetAddress),
			fmt.Sprintf("--container-arg=--web-port=%d", req.AgentPort),
		}
		if req.Scenario != "" {
			args = append(args, fmt.Sprintf("--container-arg=--scenario=%s", req.Scenario))
		}
		return run(ctx, args...)
	}
}
