// Package cliutil holds logger and styling helpers shared by the seqls and
// seqexpand commands, so both present diagnostics and colored output the
// same way.
package cliutil

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Color palette shared across CLI output.
var (
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorError   = lipgloss.Color("#EF4444")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorPath    = lipgloss.Color("#3B82F6")
)

var (
	// SequenceStyle renders a reconstructed sequence's canonical form.
	SequenceStyle = lipgloss.NewStyle().Foreground(ColorPath)

	// NonSequenceStyle renders a filename that didn't join any sequence.
	NonSequenceStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// ErrorStyle renders a fatal error written to stderr.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorError)

	// WarningStyle renders a recoverable parse failure.
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
)

// DisableColor forces every style in this package to render plain text,
// for --no-color and for output that isn't a terminal.
func DisableColor() {
	lipgloss.SetColorProfile(0)
}

// NewLogger returns a charmbracelet/log logger writing to stderr, set to
// debug level when verbose is true and warn level otherwise.
func NewLogger(prefix string, verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: prefix,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
