package braces

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/braces/pkg/errors"
	"github.com/arthur-debert/braces/pkg/logging"
	"github.com/arthur-debert/braces/pkg/paths"
	"github.com/arthur-debert/braces/pkg/trie"
)

// Result is the outcome of a compression call.
type Result struct {
	// Words holds one expression, or the literal paths when the whole input
	// had to be enumerated because of DisallowEmptyBraces.
	Words []string
	// Suffix is the common suffix stripped before composition. It is already
	// re-attached to every word.
	Suffix string
	// Nodes is the size of the trie, root included.
	Nodes int
	// Enumerated is the number of paths listed literally because they run
	// deeper than MaxDepth+1 segments. It never grows as MaxDepth grows.
	Enumerated int
}

// Brace compresses paths into a single brace expression. When the empty
// alternative policy forces literal enumeration of the whole input the
// paths are joined with a space.
func Brace(paths []string, cfg Config) (string, error) {
	res, err := Compress(paths, cfg)
	if err != nil {
		return "", err
	}
	return strings.Join(res.Words, " "), nil
}

// Compress runs the compression pipeline and reports its intermediate
// results alongside the output.
func Compress(input []string, cfg Config) (Result, error) {
	logger := logging.GetLogger("braces")
	done := logging.LogOperationStart(logger, "compress")
	defer done()

	prepared, err := prepare(input, cfg)
	if err != nil {
		return Result{}, err
	}

	suffix := paths.CommonSuffix(prepared)
	stripped := make([]string, len(prepared))
	for i, p := range prepared {
		stripped[i] = p[:len(p)-len(suffix)]
	}
	logger.Trace().Str("suffix", suffix).Int("paths", len(stripped)).Msg("Stripped common suffix")

	t := trie.Build(stripped, cfg.PathSeparator, trie.Options{
		SplitSegments: cfg.AllowSegmentSplit,
		Distinct:      !cfg.DeduplicateInputs,
	})

	c := newComposer(t, cfg)
	words := c.run()
	for i := range words {
		words[i] += suffix
	}

	logger.Debug().
		Int("paths", len(input)).
		Int("nodes", t.Len()).
		Int("words", len(words)).
		Int("enumerated", c.enumerated).
		Msg("Compressed paths")

	return Result{Words: words, Suffix: suffix, Nodes: t.Len(), Enumerated: c.enumerated}, nil
}

// prepare validates the input and returns an owned, cleaned copy of it.
func prepare(input []string, cfg Config) ([]string, error) {
	if len(input) == 0 {
		return nil, errors.EmptyInput()
	}

	out := make([]string, len(input))
	copy(out, input)

	if cfg.AllowMixedSeparators {
		out = paths.NormaliseAll(out, cfg.PathSeparator)
	} else if err := paths.ValidateSeparators(out, cfg.PathSeparator); err != nil {
		return nil, err
	}

	if cfg.ReprocessBraces {
		var expanded []string
		for _, p := range out {
			expanded = append(expanded, Expand(p)...)
		}
		out = expanded
	} else {
		for _, p := range out {
			if hasBraces(p) {
				return nil, errors.InvalidBraceInput(p, "reprocessing disabled")
			}
		}
	}

	if cfg.DeduplicateInputs {
		out = dedup(out)
	}

	return out, nil
}

// dedup keeps the first occurrence of every string.
func dedup(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// BraceGroups compresses independent path groups concurrently. Results keep
// the order of groups. The first failure cancels outstanding work and is
// returned. A workers value of zero or less uses GOMAXPROCS.
func BraceGroups(ctx context.Context, groups [][]string, cfg Config, workers int) ([]string, error) {
	results, err := CompressGroups(ctx, groups, cfg, workers)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(results))
	for i, res := range results {
		out[i] = strings.Join(res.Words, " ")
	}
	return out, nil
}

// CompressGroups is BraceGroups returning the full Result of every group.
func CompressGroups(ctx context.Context, groups [][]string, cfg Config, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Result, len(groups))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, group := range groups {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Compress(group, cfg)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
