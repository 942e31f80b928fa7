package loadgenctl

import (
	"strings"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loadgenproject/loadgenctl/pkg/client/domain"
)

func threeJobs() []domain.JobInfo {
	return []domain.JobInfo{
		{Name: "loadgenerator-ab12", Zone: "us-west1-a", Address: "34.68.1.2"},
		{Name: "loadgenerator-cd34", Zone: "us-east1-b", Address: "35.190.2.7"},
		{Name: "loadgenerator-ef56", Zone: "europe-west1-b", Address: "34.76.3.9"},
	}
}

func TestCollectStatusesOneUnreachable(t *testing.T) {
	app, _ := newTestApp(nil)
	jobs := threeJobs()

	app.Params.Agent.Stats = func(host string) (*domain.LoadStatus, error) {
		if host == "35.190.2.7" {
			return nil, errors.Wrap(syscall.ECONNREFUSED, "error querying agent")
		}
		return &domain.LoadStatus{State: "running", UserCount: 100, TotalRPS: 241.5, FailRatio: 0.015}, nil
	}

	results := app.collectStatuses(jobs)
	require.Len(t, results, len(jobs))

	unreachable := 0
	for i, result := range results {
		assert.Equal(t, jobs[i], result.Job, "each result must stay paired with its job")
		if result.Err != nil {
			unreachable++
			assert.Nil(t, result.Status)
			assert.Equal(t, "loadgenerator-cd34", result.Job.Name)
			continue
		}
		require.NotNil(t, result.Status)
		assert.Equal(t, "running", result.Status.State)
	}
	assert.Equal(t, 1, unreachable)
}

func TestCollectStatusesJobWithoutAddress(t *testing.T) {
	app, _ := newTestApp(nil)
	statsCalls := 0
	app.Params.Agent.Stats = func(host string) (*domain.LoadStatus, error) {
		statsCalls++
		return &domain.LoadStatus{}, nil
	}

	results := app.collectStatuses([]domain.JobInfo{{Name: "loadgenerator-ab12", Zone: "us-west1-a"}})
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.Equal(t, 0, statsCalls, "a job without an address must not be queried")
}

func TestStatusAllDegradesPerJob(t *testing.T) {
	app, buf := newTestApp(nil)
	app.Params.Compute.List = func(prefix string) ([]domain.JobInfo, error) { return threeJobs(), nil }
	app.Params.Agent.Stats = func(host string) (*domain.LoadStatus, error) {
		if host == "35.190.2.7" {
			return nil, errors.Wrap(syscall.ECONNREFUSED, "error querying agent")
		}
		return &domain.LoadStatus{State: "running", UserCount: 100, TotalRPS: 241.5, FailRatio: 0.015}, nil
	}

	require.NoError(t, app.StatusAll())

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "could not connect"))
	assert.Equal(t, 2, strings.Count(out, "running"))
	assert.Contains(t, out, "1.5%")
}

func TestStatusAllNoJobs(t *testing.T) {
	app, buf := newTestApp(nil)
	app.Params.Compute.List = func(prefix string) ([]domain.JobInfo, error) { return nil, nil }

	require.NoError(t, app.StatusAll())
	assert.Contains(t, buf.String(), "No load-generation jobs running")
}
