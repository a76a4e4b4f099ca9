// Package logger holds the process-wide structured logger shared by the
// engine and game packages.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. Engines log at Debug level only.
var Log = logrus.New()

func init() {
	Log.SetLevel(logrus.WarnLevel)
	Log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

// SetVerbose switches between Debug and Warn output
func SetVerbose(verbose bool) {
	if verbose {
		Log.SetLevel(logrus.DebugLevel)
		return
	}
	Log.SetLevel(logrus.WarnLevel)
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

// Debugging reports whether Debug entries are emitted, so callers can skip
// building fields on hot paths.
func Debugging() bool {
	return Log.IsLevelEnabled(logrus.DebugLevel)
}

// Component returns an entry tagged with the component name
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
