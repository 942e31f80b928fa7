package compute

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/loadgenproject/loadgenctl/pkg/client/domain"
)

// ListAPI enumerates instances whose name starts with the given prefix.
type ListAPI func(prefix string) ([]domain.JobInfo, error)

func List(run CommandRunner, timeout time.Duration) ListAPI {
	return func(prefix string) ([]domain.JobInfo, error) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		out, err := run(ctx,
			"compute", "instances", "list",
			"--filter", fmt.Sprintf("name~^%s", prefix),
			"--format", "value(name,zone,EXTERNAL_IP)",
		)
		if err != nil {
			return nil, err
		}
		return parseInstanceList(out), nil
	}
}

// parseInstanceList parses the provider's tab-separated value output, one
// instance per line. The zone column may be a full resource path; only its
// final segment is kept.
func parseInstanceList(out string) []domain.JobInfo {
	jobs := []domain.JobInfo{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		job := domain.JobInfo{Name: fields[0]}
		if len(fields) > 1 {
			job.Zone = path.Base(fields[1])
		}
		if len(fields) > 2 {
			job.Address = strings.TrimSpace(fields[2])
		}
		jobs = append(jobs, job)
	}
	return jobs
}
