package common

import (
	"time"
)

// DefaultCallTimeout bounds each individual HTTP call to a target or agent.
// Provider CLI invocations get their own, much larger timeout from the
// orchestrator configuration.
const DefaultCallTimeout = 5 * time.Second
