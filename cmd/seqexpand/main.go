// Command seqexpand prints every filename a file sequence spec expands to.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	fileseqcmd "github.com/holovista/fileseq/cmd/fileseq"
	"github.com/holovista/fileseq/fileseq"
	"github.com/holovista/fileseq/internal/cliutil"
)

// run expands each spec into its materialized filenames, writing one per
// line to out; a spec that fails to parse is echoed literally instead. It
// reports whether any spec failed, and is the testable core of the
// command, independent of Cobra's flag plumbing.
func run(specs []string, out io.Writer, logger *log.Logger) bool {
	failed := false
	for _, spec := range specs {
		seq, err := fileseq.ParseFileSequence(spec)
		if err != nil {
			logger.Warn("failed to parse spec, printing literally", "spec", spec, "error", err)
			fmt.Fprintln(out, spec)
			failed = true
			continue
		}
		size := seq.Size()
		for i := int64(0); i < size; i++ {
			name, err := seq.At(i)
			if err != nil {
				logger.Warn("failed to materialize frame", "spec", spec, "index", i, "error", err)
				failed = true
				continue
			}
			fmt.Fprintln(out, name)
		}
	}
	return failed
}

func main() {
	root, flags := fileseqcmd.NewRootCommand("seqexpand <spec>...", "Print every filename a file sequence spec expands to")
	root.Args = cobra.MinimumNArgs(1)

	root.RunE = func(cmd *cobra.Command, args []string) error {
		flags.ApplyColor()
		logger := cliutil.NewLogger("seqexpand", flags.Verbose)

		if run(args, cmd.OutOrStdout(), logger) {
			return fmt.Errorf("one or more specs failed to expand")
		}
		return nil
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cliutil.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
