package common

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// ConfigureCommandLineLogging routes log output to stderr without
// timestamps, keeping stdout reserved for command output.
func ConfigureCommandLineLogging() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, DisableTimestamp: true})
	log.SetOutput(os.Stderr)
}
