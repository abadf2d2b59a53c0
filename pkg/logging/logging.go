package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// New builds the logger the CLIs share. Verbose lowers the level to debug so
// per-file extraction decisions become visible.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		TimeFormat:      time.Kitchen,
	})
}
