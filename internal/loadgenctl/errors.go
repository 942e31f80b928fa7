package loadgenctl

import "fmt"

// ErrInvalidUserCount is returned before any provider call when a requested
// user count is outside the allowed range.
type ErrInvalidUserCount struct {
	Count int
	Max   int
}

func (e *ErrInvalidUserCount) Error() string {
	return fmt.Sprintf("user count %d is out of range: must be between 0 and %d", e.Count, e.Max)
}

// ErrUnreachableTarget is returned before any instance is provisioned when
// the target address does not answer over HTTP, so no money is spent on
// instances that cannot produce useful traffic.
type ErrUnreachableTarget struct {
	Target string
	Cause  error
}

func (e *ErrUnreachableTarget) Error() string {
	return fmt.Sprintf("target address %s is not reachable over HTTP: %s", e.Target, e.Cause)
}

func (e *ErrUnreachableTarget) Unwrap() error {
	return e.Cause
}
