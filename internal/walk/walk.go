// Package walk reconstructs file sequences from a real directory tree,
// batching fileseq.FindSequence per directory rather than across the
// whole tree.
package walk

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"

	"github.com/holovista/fileseq/fileseq"
)

// Options configures a walk.
type Options struct {
	// IncludeHidden includes dotfiles in the walk. Default: skipped.
	IncludeHidden bool

	// IgnoreGlob, when non-empty, is matched against each entry's path
	// relative to the walk root with doublestar.Match; matching entries
	// are excluded before they reach fileseq.FindSequence. Filesystem-level
	// filtering only — it never changes how the core parses a sequence.
	IgnoreGlob string

	// Logger receives structured diagnostics. A nil Logger discards them.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(discard{})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// Result is one directory's worth of reconstructed sequences.
type Result struct {
	Dir          string
	Sequences    []fileseq.FileSequence
	NonSequences []string
}

// FindSequenceOnDisk walks root, invoking fileseq.FindSequence once per
// directory on that directory's sorted immediate filenames. Permission
// errors on an entry are logged and skipped; only a permission error on
// root itself is fatal.
func FindSequenceOnDisk(ctx context.Context, fsys fs.FS, root string, opts Options) ([]Result, error) {
	logger := opts.logger()
	var results []Result

	entriesByDir := make(map[string][]string)
	var dirOrder []string

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if p == root {
				return fmt.Errorf("walk root %s: %w", root, err)
			}
			logger.Warn("skipping unreadable entry", "path", p, "error", err)
			return nil
		}
		if d.IsDir() {
			if _, seen := entriesByDir[p]; !seen {
				dirOrder = append(dirOrder, p)
				entriesByDir[p] = nil
			}
			return nil
		}

		name := d.Name()
		if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
			logger.Debug("skipping hidden entry", "path", p)
			return nil
		}
		if opts.IgnoreGlob != "" {
			rel := p
			if root != "." {
				if r, relErr := pathRel(root, p); relErr == nil {
					rel = r
				}
			}
			matched, matchErr := doublestar.Match(opts.IgnoreGlob, rel)
			if matchErr != nil {
				logger.Warn("invalid ignore glob", "glob", opts.IgnoreGlob, "error", matchErr)
			} else if matched {
				logger.Debug("skipping ignored entry", "path", p)
				return nil
			}
		}

		dir := path.Dir(p)
		entriesByDir[dir] = append(entriesByDir[dir], name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, dir := range dirOrder {
		names := entriesByDir[dir]
		sort.Strings(names)
		seqs, rest := fileseq.FindSequence(names)
		logger.Debug("directory processed", "dir", dir, "sequences", len(seqs), "non_sequences", len(rest))
		if len(seqs) == 0 && len(rest) == 0 {
			continue
		}
		fullRest := make([]string, len(rest))
		for i, name := range rest {
			fullRest[i] = path.Join(dir, name)
		}
		results = append(results, Result{Dir: dir, Sequences: seqs, NonSequences: fullRest})
	}

	return results, nil
}

func pathRel(root, p string) (string, error) {
	rel := strings.TrimPrefix(p, root)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return ".", nil
	}
	return rel, nil
}
