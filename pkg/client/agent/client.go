package agent

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/loadgenproject/loadgenctl/pkg/client/domain"
)

// Details carries the connection parameters shared by every agent call.
type Details struct {
	// Port the Load Agent listens on.
	Port int
	// Timeout applied to each individual HTTP call.
	Timeout time.Duration
}

// SwarmAPI instructs the agent at the given host to run the given number of
// simulated users. The agent ramps up asynchronously; a nil error only
// means the instruction was accepted.
type SwarmAPI func(host string, users int) error

// StatsAPI fetches the agent's current load statistics.
type StatsAPI func(host string) (*domain.LoadStatus, error)

// PingAPI performs a single bounded HTTP GET against the given URL. A nil
// error means something answered; the response status is not inspected.
type PingAPI func(rawURL string) error

func Swarm(details *Details) SwarmAPI {
	client := &http.Client{Timeout: details.Timeout}
	return func(host string, users int) error {
		count := strconv.Itoa(users)
		resp, err := client.PostForm(
			fmt.Sprintf("http://%s:%d/swarm", host, details.Port),
			url.Values{"locust_count": {count}, "hatch_rate": {count}},
		)
		if err != nil {
			return errors.Wrapf(err, "error sending swarm instruction to agent at %s", host)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return errors.Errorf("agent at %s rejected swarm instruction: %s: %s", host, resp.Status, strings.TrimSpace(string(body)))
		}
		return nil
	}
}

func Stats(details *Details) StatsAPI {
	client := &http.Client{Timeout: details.Timeout}
	return func(host string) (*domain.LoadStatus, error) {
		resp, err := client.Get(fmt.Sprintf("http://%s:%d/stats/requests", host, details.Port))
		if err != nil {
			return nil, errors.Wrapf(err, "error querying agent at %s", host)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, errors.Errorf("agent at %s returned %s for stats query", host, resp.Status)
		}
		status := &domain.LoadStatus{}
		if err := json.NewDecoder(resp.Body).Decode(status); err != nil {
			return nil, errors.Wrapf(err, "error decoding stats from agent at %s", host)
		}
		return status, nil
	}
}

func Ping(details *Details) PingAPI {
	client := &http.Client{Timeout: details.Timeout}
	return func(rawURL string) error {
		resp, err := client.Get(NormalizeURL(rawURL))
		if err != nil {
			return errors.Wrapf(err, "no HTTP response from %s", rawURL)
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil
	}
}

// NormalizeURL prepends an http scheme to bare host[:port] addresses so
// they can be passed to an HTTP client.
func NormalizeURL(rawURL string) string {
	if strings.Contains(rawURL, "://") {
		return rawURL
	}
	return "http://" + rawURL
}
