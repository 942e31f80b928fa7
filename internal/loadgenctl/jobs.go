package loadgenctl

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/loadgenproject/loadgenctl/pkg/client/domain"
)

// ListJobs enumerates the load-generation jobs the provider currently
// knows about. The listing is recomputed on every call; there is no local
// registry.
func (a *App) ListJobs() ([]domain.JobInfo, error) {
	jobs, err := a.Params.Compute.List(a.Params.Config.NamePrefix)
	if err != nil {
		return nil, errors.Wrap(err, "error listing jobs")
	}
	return jobs, nil
}

// Jobs prints the current job listing to the app output.
func (a *App) Jobs() error {
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
	fmt.Fprintf(w, "NAME\tZONE\tADDRESS\n")
	for _, job := range jobs {
		address := job.Address
		if address == "" {
			address = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", job.Name, job.Zone, address)
	}
	return nil
}
