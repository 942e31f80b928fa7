package loadgenctl

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUsersRejectsOutOfRangeCounts(t *testing.T) {
	for _, count := range []int{-1, -100, 1001, 1500} {
		t.Run(fmt.Sprintf("count=%d", count), func(t *testing.T) {
			app, _ := newTestApp(nil)

			describeCalls := 0
			app.Params.Compute.Describe = func(name, zone string) (string, error) {
				describeCalls++
				return "34.68.1.2", nil
			}

			err := app.SetUsers("loadgenerator-ab12", "us-west1-a", count)
			require.Error(t, err)

			var invalid *ErrInvalidUserCount
			assert.ErrorAs(t, err, &invalid)
			assert.Equal(t, 0, describeCalls, "the provider must not be contacted for an invalid count")
		})
	}
}

func TestSetUsersAcceptsBoundaryCounts(t *testing.T) {
	for _, count := range []int{0, 1, 1000} {
		t.Run(fmt.Sprintf("count=%d", count), func(t *testing.T) {
			app, buf := newTestApp(nil)

			app.Params.Compute.Describe = func(name, zone string) (string, error) { return "34.68.1.2", nil }
			app.Params.Agent.Ping = func(rawURL string) error { return nil }

			var gotHost string
			var gotUsers int
			app.Params.Agent.Swarm = func(host string, users int) error {
				gotHost, gotUsers = host, users
				return nil
			}

			require.NoError(t, app.SetUsers("loadgenerator-ab12", "us-west1-a", count))
			assert.Equal(t, "34.68.1.2", gotHost)
			assert.Equal(t, count, gotUsers)
			assert.Contains(t, buf.String(), fmt.Sprintf("Instructed job loadgenerator-ab12 to run %d users", count))
		})
	}
}

func TestSetUsersJobNotAddressable(t *testing.T) {
	app, _ := newTestApp(nil)
	app.Params.Compute.Describe = func(name, zone string) (string, error) {
		return "", errors.New("instance not found")
	}

	err := app.SetUsers("loadgenerator-ab12", "us-west1-a", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not addressable")
}

func TestSetUsersAgentDownGivesGuidance(t *testing.T) {
	app, _ := newTestApp(nil)
	app.Params.Compute.Describe = func(name, zone string) (string, error) { return "34.68.1.2", nil }
	app.Params.Agent.Ping = func(rawURL string) error { return errors.New("connection refused") }

	swarmCalls := 0
	app.Params.Agent.Swarm = func(host string, users int) error {
		swarmCalls++
		return nil
	}

	err := app.SetUsers("loadgenerator-ab12", "us-west1-a", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loadgenctl setup")
	assert.Equal(t, 0, swarmCalls)
}
