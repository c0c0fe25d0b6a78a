package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/braces/pkg/config"
	"github.com/arthur-debert/braces/pkg/errors"
)

func newConfigCmd(configFile *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{File: *configFile, Flags: flagOverrides(cmd.Flags())})
			if err != nil {
				return err
			}

			data, err := config.Dump(cfg, format)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, "failed to write configuration")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", MsgFlagFormat)
	return cmd
}
