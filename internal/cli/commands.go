package cli

import (
	"embed"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/braces/internal/version"
	"github.com/arthur-debert/braces/pkg/cobrax/topics"
	"github.com/arthur-debert/braces/pkg/logging"
)

//go:embed topics/*.md
var topicFiles embed.FS

// logSession holds the log file opened by the command being run.
type logSession struct {
	started bool
	closeFn func()
}

func (s *logSession) start(console io.Writer, verbosity int) {
	s.Close()
	s.closeFn = logging.SetupLogger(console, verbosity)
	s.started = true
}

// Close releases the log file. Calling it again is a no-op.
func (s *logSession) Close() {
	if s.closeFn != nil {
		s.closeFn()
		s.closeFn = nil
	}
}

// Execute runs the command tree with args. The log file is closed whether
// or not the command fails, since cobra skips post-run hooks after an error.
func Execute(args []string) error {
	return run(&logSession{}, args)
}

func run(logs *logSession, args []string) error {
	defer logs.Close()

	rootCmd := newRootCmd(logs)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&logSession{})
}

func newRootCmd(logs *logSession) *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:     "braces [flags] [paths...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logs.start(cmd.ErrOrStderr(), verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logs.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(cmd, args, configFile)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)
	addCompressFlags(rootCmd)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newExpandCmd())
	rootCmd.AddCommand(newConfigCmd(&configFile))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, topicFiles, "topics", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
