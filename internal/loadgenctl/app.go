package loadgenctl

import (
	"crypto/rand"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/loadgenproject/loadgenctl/internal/common"
	"github.com/loadgenproject/loadgenctl/pkg/client/agent"
	"github.com/loadgenproject/loadgenctl/pkg/client/compute"
)

type App struct {
	// Parameters passed to the CLI by the user.
	Params *Params
	// Out is used to write the output. Defaults to standard out,
	// but can be overridden in tests to make assertions on the application's output.
	Out io.Writer
	// Source of randomness, used for job names and zone selection. Tests can
	// use a mocked random source in order to provide deterministic behavior.
	Random io.Reader
}

// Params struct holds all user-customizable parameters and the provider and
// agent backends. Backends are plain function values so that tests can
// substitute stubs without a provider or a running agent.
type Params struct {
	Config  *Config
	Compute *ComputeAPI
	Agent   *AgentAPI
}

// ComputeAPI groups the Cloud Instance Provider operations the app depends on.
type ComputeAPI struct {
	Create           compute.CreateAPI
	Describe         compute.DescribeAPI
	List             compute.ListAPI
	Delete           compute.DeleteAPI
	FirewallDescribe compute.FirewallDescribeAPI
	FirewallCreate   compute.FirewallCreateAPI
}

// AgentAPI groups the Load Agent operations the app depends on.
type AgentAPI struct {
	Swarm agent.SwarmAPI
	Stats agent.StatsAPI
	Ping  agent.PingAPI
}

// Config holds the process-wide settings, passed to the App at construction
// rather than read from globals.
type Config struct {
	// AgentPort is the port the Load Agent web service listens on.
	AgentPort int
	// HTTPTimeout bounds each individual HTTP call to a target or agent.
	HTTPTimeout time.Duration
	// ProviderTimeout bounds each provider CLI invocation. Instance
	// creation is synchronous and can take minutes, so this is much larger
	// than HTTPTimeout.
	ProviderTimeout time.Duration
	// MaxUsers is the hard per-job ceiling on simulated users, reflecting
	// per-instance connection limits.
	MaxUsers int
	// AutostartUsers is the user count autostart applies to a fresh job.
	AutostartUsers int
	// AutostartWait is the total budget spent waiting for a fresh agent to
	// accept connections.
	AutostartWait time.Duration
	// RetryInterval is the fixed delay between readiness attempts.
	RetryInterval time.Duration
	// DefaultZones are the candidate zones autostart picks from when the
	// caller does not specify one.
	DefaultZones []string
	// StatusWorkers bounds the concurrency of the status fan-out.
	StatusWorkers int

	MachineType    string
	ContainerImage string
	NetworkTag     string
	FirewallRule   string
	NamePrefix     string
}

func DefaultConfig() *Config {
	return &Config{
		AgentPort:       8080,
		HTTPTimeout:     common.DefaultCallTimeout,
		ProviderTimeout: 5 * time.Minute,
		MaxUsers:        1000,
		AutostartUsers:  100,
		AutostartWait:   60 * time.Second,
		RetryInterval:   5 * time.Second,
		DefaultZones: []string{
			"us-west1-a",
			"us-central1-a",
			"us-east1-b",
			"europe-west1-b",
			"asia-east1-a",
		},
		StatusWorkers:  10,
		MachineType:    "e2-standard-2",
		ContainerImage: "gcr.io/loadgenproject/loadgen-agent:latest",
		NetworkTag:     "loadgen-agent",
		FirewallRule:   "allow-loadgen-agent",
		NamePrefix:     "loadgenerator-",
	}
}

// New instantiates an App with default parameters, including standard output
// and cryptographically secure random source. The provider and agent
// backends are left for the caller to wire.
func New() *App {
	return &App{
		Params: &Params{Config: DefaultConfig()},
		Out:    os.Stdout,
		Random: rand.Reader,
	}
}

const nameSuffixLength = 4

const nameCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// generateJobName draws a job name of the form <prefix><4 chars from [a-z0-9]>
// from the app's random source.
func (a *App) generateJobName() (string, error) {
	suffix := make([]byte, nameSuffixLength)
	for i := range suffix {
		idx, err := randomIndex(a.Random, len(nameCharset))
		if err != nil {
			return "", errors.Wrap(err, "error reading random source for job name")
		}
		suffix[i] = nameCharset[idx]
	}
	return a.Params.Config.NamePrefix + string(suffix), nil
}

// pickZone returns a uniformly random zone from the configured candidates.
func (a *App) pickZone() (string, error) {
	zones := a.Params.Config.DefaultZones
	if len(zones) == 0 {
		return "", errors.New("no default zones configured")
	}
	idx, err := randomIndex(a.Random, len(zones))
	if err != nil {
		return "", errors.Wrap(err, "error reading random source for zone selection")
	}
	return zones[idx], nil
}

// randomIndex draws a uniform index in [0, n) from r. Bytes in the biased
// tail of the range are rejected so the distribution stays exactly uniform.
func randomIndex(r io.Reader, n int) (int, error) {
	limit := 256 - 256%n
	buf := make([]byte, 1)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return 0, err
		}
		if int(buf[0]) < limit {
			return int(buf[0]) % n, nil
		}
	}
}
