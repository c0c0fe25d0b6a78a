package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/braces/pkg/braces"
	"github.com/arthur-debert/braces/pkg/config"
	"github.com/arthur-debert/braces/pkg/errors"
	"github.com/arthur-debert/braces/pkg/highlight"
	"github.com/arthur-debert/braces/pkg/input"
	"github.com/arthur-debert/braces/pkg/logging"
	"github.com/arthur-debert/braces/pkg/pretty"
	"github.com/arthur-debert/braces/pkg/shell"
)

func runCompress(cmd *cobra.Command, args []string, configFile string) error {
	logger := logging.GetLogger("cli")

	cfg, err := config.Load(config.LoadOptions{File: configFile, Flags: flagOverrides(cmd.Flags())})
	if err != nil {
		return err
	}

	groups, err := readGroups(cmd, args, cfg.Input)
	if err != nil {
		return err
	}
	logger.Debug().Int("groups", len(groups)).Msg("Read input")

	results, err := braces.CompressGroups(cmd.Context(), groups, cfg.Compress, cfg.Input.Workers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p, err := newPrinter(cfg, out)
	if err != nil {
		return err
	}
	for _, res := range results {
		line, err := p.render(res.Words)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, "failed to write output")
		}
	}
	return nil
}

// readGroups takes the arguments as one group, or reads standard input.
func readGroups(cmd *cobra.Command, args []string, opts config.InputConfig) ([][]string, error) {
	if len(args) > 0 {
		return [][]string{args}, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		_ = cmd.Help()
		return nil, errors.New(errors.ErrEmptyInput, MsgErrNoPaths)
	}

	groups, err := input.Read(in, input.Options{NullData: opts.NullData, Groups: opts.Groups})
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, errors.EmptyInput()
	}
	return groups, nil
}

// printer applies the output stages to each word: shell quoting, then
// colour, then indentation.
type printer struct {
	quote     bool
	pretty    bool
	highlight *highlight.Highlighter
}

func newPrinter(cfg *config.Config, out io.Writer) (*printer, error) {
	p := &printer{quote: cfg.Output.Quote, pretty: cfg.Output.Pretty}
	if !cfg.ColorMode().Enabled(out) {
		return p, nil
	}
	if len(cfg.Output.Palette) == 0 {
		p.highlight = highlight.Default()
		return p, nil
	}
	h, err := highlight.New(cfg.Output.Palette)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid palette")
	}
	p.highlight = h
	return p, nil
}

// render formats the words of one result. Pretty output puts each word on
// its own line.
func (p *printer) render(words []string) (string, error) {
	rendered := make([]string, 0, len(words))
	for _, w := range words {
		if p.quote {
			q, err := shell.QuoteExpression(w)
			if err != nil {
				return "", errors.Wrap(err, errors.ErrInternal, "failed to quote expression")
			}
			w = q
		}
		if p.highlight != nil {
			w = p.highlight.Braces(w)
		}
		if p.pretty {
			w = pretty.Braces(w)
		}
		rendered = append(rendered, w)
	}

	sep := " "
	if p.pretty {
		sep = "\n"
	}
	return strings.Join(rendered, sep), nil
}
