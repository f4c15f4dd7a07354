// Package logging configures the console logger.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a leveled console logger writing to stderr. Verbose enables
// debug output; otherwise only warnings and above are shown so normal CLI
// output stays clean.
func New(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "taskline",
	})
}
