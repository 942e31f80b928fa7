package compute

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deadlineFromRun captures the deadline the factory puts on the runner's
// context, as an offset from the call.
func deadlineFromRun(t *testing.T, invoke func(run CommandRunner)) time.Duration {
	t.Helper()
	var remaining time.Duration
	start := time.Now()
	invoke(func(ctx context.Context, args ...string) (string, error) {
		deadline, ok := ctx.Deadline()
		require.True(t, ok, "runner context must carry a deadline")
		remaining = deadline.Sub(start)
		return "", nil
	})
	return remaining
}

// Instance creation is synchronous on the provider side and routinely takes
// well over the short HTTP call timeout; the configured provider timeout
// must reach the runner unchanged.
func TestMutatingCallsUseConfiguredProviderTimeout(t *testing.T) {
	timeout := 5 * time.Minute

	remaining := deadlineFromRun(t, func(run CommandRunner) {
		Create(run, timeout)(CreateRequest{Name: "loadgenerator-ab12", Zone: "us-west1-a", TargetAddress: "10.0.0.5", AgentPort: 8080})
	})
	assert.Greater(t, remaining, 4*time.Minute)

	remaining = deadlineFromRun(t, func(run CommandRunner) {
		Delete(run, timeout)("loadgenerator-ab12", "us-west1-a")
	})
	assert.Greater(t, remaining, 4*time.Minute)

	remaining = deadlineFromRun(t, func(run CommandRunner) {
		FirewallCreate(run, timeout)("allow-loadgen-agent", 8080, "loadgen-agent")
	})
	assert.Greater(t, remaining, 4*time.Minute)
}

func TestQueryCallsUseConfiguredProviderTimeout(t *testing.T) {
	timeout := time.Minute

	remaining := deadlineFromRun(t, func(run CommandRunner) {
		List(run, timeout)("loadgenerator-")
	})
	assert.Greater(t, remaining, 30*time.Second)

	remaining = deadlineFromRun(t, func(run CommandRunner) {
		// empty runner output means no address; only the deadline matters here
		Describe(run, timeout)("loadgenerator-ab12", "us-west1-a")
	})
	assert.Greater(t, remaining, 30*time.Second)

	remaining = deadlineFromRun(t, func(run CommandRunner) {
		FirewallDescribe(run, timeout)("allow-loadgen-agent")
	})
	assert.Greater(t, remaining, 30*time.Second)
}

// A create that takes longer than the old short HTTP default must not be
// killed by its context.
func TestSlowCreateSurvivesShortHTTPDefault(t *testing.T) {
	run := func(ctx context.Context, args ...string) (string, error) {
		// simulate a provisioning call outlasting the 5s HTTP call timeout
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.Greater(t, time.Until(deadline), 7*time.Second)
		return "External IP: 34.68.1.2", ctx.Err()
	}

	out, err := Create(run, 5*time.Minute)(CreateRequest{Name: "loadgenerator-ab12", Zone: "us-west1-a", TargetAddress: "10.0.0.5", AgentPort: 8080})
	require.NoError(t, err)
	assert.Equal(t, "External IP: 34.68.1.2", out)
}
