// Package fileseqcmd holds the root Cobra command shared by seqls and
// seqexpand, plus the flags and config wiring both subcommands need.
package fileseqcmd

import (
	"github.com/spf13/cobra"

	"github.com/holovista/fileseq/internal/cliutil"
	"github.com/holovista/fileseq/internal/config"
)

// NewRootCommand builds the base command a binary's main package extends
// with its own RunE, Use, and flags.
func NewRootCommand(use, short string) (*cobra.Command, *Flags) {
	flags := &Flags{}
	cfg, err := config.Load()
	if err == nil {
		flags.Hidden = cfg.Hidden
		flags.NoColor = cfg.NoColor
	}

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&flags.Verbose, "verbose", false, "enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", flags.NoColor, "disable styled output")
	return cmd, flags
}

// Flags holds the flag values common to both binaries.
type Flags struct {
	Verbose bool
	NoColor bool
	Hidden  bool
	Ignore  string
}

// ApplyColor disables cliutil's styles when requested by flag or config.
func (f *Flags) ApplyColor() {
	if f.NoColor {
		cliutil.DisableColor()
	}
}
