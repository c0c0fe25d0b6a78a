package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagBinding ties a command-line flag to a dotted config key.
type flagBinding struct {
	flag   string
	key    string
	negate bool
}

var flagBindings = []flagBinding{
	{flag: "separator", key: "compress.path_separator"},
	{flag: "max-depth", key: "compress.max_depth"},
	{flag: "max-brace-size", key: "compress.max_brace_size"},
	{flag: "stem-split", key: "compress.allow_stem_split"},
	{flag: "no-segment-split", key: "compress.allow_segment_split", negate: true},
	{flag: "sort", key: "compress.sort_items"},
	{flag: "disallow-empty", key: "compress.disallow_empty_braces"},
	{flag: "preserve-order", key: "compress.preserve_order_within_braces"},
	{flag: "allow-mixed-separators", key: "compress.allow_mixed_separators"},
	{flag: "no-dedup", key: "compress.deduplicate_inputs", negate: true},
	{flag: "reprocess", key: "compress.reprocess_braces"},
	{flag: "pretty", key: "output.pretty"},
	{flag: "color", key: "output.color"},
	{flag: "quote", key: "output.quote"},
	{flag: "null", key: "input.null_data"},
	{flag: "groups", key: "input.groups"},
}

// addCompressFlags registers the flags shared by every command that loads
// the configuration. Defaults live in the config layer, so the values here
// only matter once a flag is set.
func addCompressFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("separator", "/", MsgFlagSeparator)
	flags.Int("max-depth", 5, MsgFlagMaxDepth)
	flags.Int("max-brace-size", 0, MsgFlagMaxBraceSize)
	flags.Bool("stem-split", false, MsgFlagStemSplit)
	flags.Bool("no-segment-split", false, MsgFlagNoSegmentSplit)
	flags.Bool("sort", false, MsgFlagSort)
	flags.Bool("disallow-empty", false, MsgFlagDisallowEmpty)
	flags.Bool("preserve-order", false, MsgFlagPreserveOrder)
	flags.Bool("allow-mixed-separators", false, MsgFlagMixedSeparators)
	flags.Bool("no-dedup", false, MsgFlagNoDedup)
	flags.Bool("reprocess", false, MsgFlagReprocess)
	flags.Bool("pretty", false, MsgFlagPretty)
	flags.String("color", "auto", MsgFlagColor)
	flags.Bool("quote", false, MsgFlagQuote)

	local := cmd.Flags()
	local.BoolP("null", "0", false, MsgFlagNull)
	local.Bool("groups", false, MsgFlagGroups)
}

// flagOverrides returns the explicitly set flags keyed by config path.
func flagOverrides(flags *pflag.FlagSet) map[string]interface{} {
	overrides := make(map[string]interface{})
	for _, b := range flagBindings {
		f := flags.Lookup(b.flag)
		if f == nil || !f.Changed {
			continue
		}

		switch f.Value.Type() {
		case "bool":
			v, _ := flags.GetBool(b.flag)
			overrides[b.key] = v != b.negate
		case "int":
			v, _ := flags.GetInt(b.flag)
			overrides[b.key] = v
		default:
			overrides[b.key] = f.Value.String()
		}
	}
	return overrides
}
