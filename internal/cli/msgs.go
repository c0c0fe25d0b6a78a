package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Compress a list of paths into a brace expression"
	MsgExpandShort     = "Expand brace expressions into paths"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion scripts"

	// Flag descriptions
	MsgFlagVerbose         = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig          = "Read configuration from this file"
	MsgFlagSeparator       = "Path separator used for splitting and output"
	MsgFlagMaxDepth        = "Nesting depth beyond which paths are listed literally"
	MsgFlagMaxBraceSize    = "Maximum alternatives per group, 0 for no limit"
	MsgFlagStemSplit       = "Factor common text out of sibling alternatives"
	MsgFlagNoSegmentSplit  = "Split paths at the first separator only"
	MsgFlagSort            = "Sort alternatives within each group"
	MsgFlagDisallowEmpty   = "Never emit empty alternatives such as {,x}"
	MsgFlagPreserveOrder   = "Keep input order within groups"
	MsgFlagMixedSeparators = "Rewrite foreign separators instead of failing"
	MsgFlagNoDedup         = "Keep repeated input paths"
	MsgFlagReprocess       = "Expand brace syntax found in the input first"
	MsgFlagNull            = "Input records are separated by NUL, not newline"
	MsgFlagGroups          = "Blank lines separate independent path lists"
	MsgFlagPretty          = "Indent the expression one alternative per line"
	MsgFlagColor           = "Colour braces by depth: auto, always or never"
	MsgFlagQuote           = "Quote literal text for the shell"
	MsgFlagFormat          = "Output format: toml or yaml"
	MsgFlagExpandNull      = "Separate expansions with NUL, not newline"

	// Errors
	MsgErrNoPaths = "no paths given and standard input is a terminal"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/expand-long.txt
	msgExpandLongRaw string
	MsgExpandLong    = strings.TrimSpace(msgExpandLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
