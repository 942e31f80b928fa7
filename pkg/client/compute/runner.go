package compute

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// ProviderDetails carries parameters shared by every provider CLI
// invocation. All fields are optional.
type ProviderDetails struct {
	// Project is forwarded as --project when set.
	Project string `mapstructure:"project"`
}

// Details returns the current provider details. It is a function so that
// flag and config-file values bound after API construction are picked up.
type Details func() *ProviderDetails

// CommandRunner executes the provider CLI with the given arguments and
// returns its combined output.
type CommandRunner func(ctx context.Context, args ...string) (string, error)

// GcloudRunner returns a CommandRunner that shells out to the gcloud binary.
// Failures wrap the command's combined output, which is where gcloud prints
// its diagnostics.
func GcloudRunner(getDetails Details) CommandRunner {
	return func(ctx context.Context, args ...string) (string, error) {
		if details := getDetails(); details != nil && details.Project != "" {
			args = append(args, "--project", details.Project)
		}
		cmd := exec.CommandContext(ctx, "gcloud", args...)
		out, err := cmd.CombinedOutput()
		if err != nil {
			return "", errors.Wrapf(err, "gcloud %s failed: %s", commandSummary(args), strings.TrimSpace(string(out)))
		}
		return string(out), nil
	}
}

// commandSummary returns the leading non-flag arguments, enough to identify
// which provider operation failed without repeating the full argument list.
func commandSummary(args []string) string {
	summary := make([]string, 0, 4)
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") || len(summary) == 4 {
			break
		}
		summary = append(summary, arg)
	}
	return strings.Join(summary, " ")
}

// CheckPrerequisite verifies the gcloud binary is available on the PATH.
// The returned error carries installation guidance for the operator.
func CheckPrerequisite() error {
	if _, err := exec.LookPath("gcloud"); err != nil {
		return errors.New("gcloud was not found on your PATH; install the Google Cloud SDK (https://cloud.google.com/sdk/install) and run 'gcloud auth login' before using this tool")
	}
	return nil
}
