package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/braces/pkg/braces"
)

func newExpandCmd() *cobra.Command {
	var null bool

	cmd := &cobra.Command{
		Use:     "expand EXPR...",
		Short:   MsgExpandShort,
		Long:    MsgExpandLong,
		Example: "  braces expand 'src/{a,b}.go'",
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			term := "\n"
			if null {
				term = "\x00"
			}
			out := cmd.OutOrStdout()
			for _, expr := range args {
				for _, p := range braces.Expand(expr) {
					if _, err := fmt.Fprint(out, p, term); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&null, "null", "0", false, MsgFlagExpandNull)
	return cmd
}
