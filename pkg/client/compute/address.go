package compute

import (
	"regexp"

	"github.com/pkg/errors"
)

var ipv4Pattern = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)

// ExtractExternalIP recovers the instance's external IPv4 address from the
// provider's human-readable create output. The provider lists the ephemeral
// external IP last, after any internal addresses, so the last IPv4-shaped
// token is the one we want. Prefer Describe's typed field access where a
// structured query is possible; this exists for the create path, where the
// address is only available in the create response text.
func ExtractExternalIP(out string) (string, error) {
	matches := ipv4Pattern.FindAllString(out, -1)
	if len(matches) == 0 {
		return "", errors.Errorf("no IPv4 address found in provider output: %q", out)
	}
	return matches[len(matches)-1], nil
}
