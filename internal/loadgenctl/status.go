package loadgenctl

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/loadgenproject/loadgenctl/pkg/client/domain"
)

// collectStatuses queries each job's agent concurrently with a bounded
// worker pool. Every job gets exactly one result slot; a query failure is
// captured in that slot instead of failing the group, so one unreachable
// agent never hides the others.
func (a *App) collectStatuses(jobs []domain.JobInfo) []domain.JobStatus {
	results := make([]domain.JobStatus, len(jobs))
	g := errgroup.Group{}
	g.SetLimit(a.Params.Config.StatusWorkers)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			results[i].Job = job
			if job.Address == "" {
				results[i].Err = errors.New("no external IP assigned yet")
				return nil
			}
			results[i].Status, results[i].Err = a.Params.Agent.Stats(job.Address)
			return nil
		})
	}
	g.Wait()
	return results
}

// StatusAll prints the current load statistics of every job. Jobs whose
// agent cannot be reached are reported as such rather than aborting the
// whole listing.
func (a *App) StatusAll() error {
	jobs, err := a.ListJobs()
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Fprintf(a.Out, "No load-generation jobs running\n")
		return nil
	}

	w := tabwriter.NewWriter(a.Out, 1, 1, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintf(w, "NAME\tZONE\tSTATE\tUSERS\tRPS\tFAILURES\n")
	for _, result := range a.collectStatuses(jobs) {
		if result.Err != nil {
			fmt.Fprintf(w, "%s\t%s\tcould not connect\t-\t-\t-\n", result.Job.Name, result.Job.Zone)
			continue
		}
		status := result.Status
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1f\t%.1f%%\n",
			result.Job.Name, result.Job.Zone,
			status.State, status.UserCount, status.TotalRPS, status.FailRatio*100)
	}
	return nil
}
