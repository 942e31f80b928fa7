package loadgenctl

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Delete tears down the named job. The provider call is not retried.
func (a *App) Delete(name string, zone string) error {
	if err := a.Params.Compute.Delete(name, zone); err != nil {
		return errors.Wrapf(err, "error deleting job %s in %s", name, zone)
	}
	fmt.Fprintf(a.Out, "Deleted job %s\n", name)
	return nil
}

// DeleteAll tears down every job the provider currently lists. Deletions
// run sequentially; failures are collected so a single failed teardown does
// not leave the remaining instances running.
func (a *App) DeleteAll() error {
	jobs, err := a.ListJobs()
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Fprintf(a.Out, "No load-generation jobs running\n")
		return nil
	}

	var result *multierror.Error
	for _, job := range jobs {
		if err := a.Delete(job.Name, job.Zone); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
