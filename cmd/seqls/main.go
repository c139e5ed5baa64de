// Command seqls reconstructs and lists file sequences under a directory.
package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	fileseqcmd "github.com/holovista/fileseq/cmd/fileseq"
	"github.com/holovista/fileseq/internal/cliutil"
	"github.com/holovista/fileseq/internal/walk"
)

// run walks fsys from root, printing every reconstructed sequence and
// non-sequence filename to out. It is the testable core of the command,
// independent of the real filesystem and of Cobra's flag plumbing.
func run(ctx context.Context, fsys fs.FS, root string, opts walk.Options, out io.Writer) error {
	results, err := walk.FindSequenceOnDisk(ctx, fsys, root, opts)
	if err != nil {
		return err
	}
	for _, r := range results {
		for _, seq := range r.Sequences {
			fmt.Fprintln(out, cliutil.SequenceStyle.Render(seq.String()))
		}
		for _, name := range r.NonSequences {
			fmt.Fprintln(out, cliutil.NonSequenceStyle.Render(name))
		}
	}
	return nil
}

func main() {
	root, flags := fileseqcmd.NewRootCommand("seqls [path]", "List reconstructed file sequences under a directory")
	root.Args = cobra.MaximumNArgs(1)
	root.PersistentFlags().BoolVar(&flags.Hidden, "hidden", flags.Hidden, "include hidden (dotfile) entries")
	root.PersistentFlags().StringVar(&flags.Ignore, "ignore", "", "glob pattern of paths to exclude, relative to path")

	root.RunE = func(cmd *cobra.Command, args []string) error {
		flags.ApplyColor()
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		logger := cliutil.NewLogger("seqls", flags.Verbose)

		err := run(context.Background(), os.DirFS(path), ".", walk.Options{
			IncludeHidden: flags.Hidden,
			IgnoreGlob:    flags.Ignore,
			Logger:        logger,
		}, cmd.OutOrStdout())
		if err != nil {
			fmt.Fprintln(os.Stderr, cliutil.ErrorStyle.Render(err.Error()))
			return err
		}
		return nil
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
