package agent

import (
	"errors"
	"net"
	"syscall"
)

// IsUnreachable reports whether err indicates the remote end is not (yet)
// accepting connections: connection refused, host or network unreachable,
// or a network timeout. These are the conditions worth retrying while an
// instance boots; HTTP-level failures are not.
func IsUnreachable(err error) bool {
	if err == nil {
		return false
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNREFUSED, syscall.EHOSTUNREACH, syscall.ENETUNREACH:
			return true
		}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}
