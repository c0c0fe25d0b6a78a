package braces

// Config controls a single compression call. It is never modified by the
// package.
type Config struct {
	// PathSeparator is used for segmentation and output.
	PathSeparator string `koanf:"path_separator" toml:"path_separator" yaml:"path_separator"`
	// MaxDepth is the trie depth beyond which nodes enumerate their literal
	// suffixes instead of nesting further.
	MaxDepth int `koanf:"max_depth" toml:"max_depth" yaml:"max_depth"`
	// MaxBraceSize caps the alternatives per group before chunking. Zero
	// means no limit.
	MaxBraceSize int `koanf:"max_brace_size" toml:"max_brace_size" yaml:"max_brace_size"`
	// AllowStemSplit factors common character prefixes and suffixes out of
	// sibling alternatives.
	AllowStemSplit bool `koanf:"allow_stem_split" toml:"allow_stem_split" yaml:"allow_stem_split"`
	// AllowSegmentSplit splits at every separator rather than the first.
	AllowSegmentSplit bool `koanf:"allow_segment_split" toml:"allow_segment_split" yaml:"allow_segment_split"`
	SortItems         bool `koanf:"sort_items" toml:"sort_items" yaml:"sort_items"`
	// DisallowEmptyBraces replaces groups that would hold an empty
	// alternative with their literal paths.
	DisallowEmptyBraces bool `koanf:"disallow_empty_braces" toml:"disallow_empty_braces" yaml:"disallow_empty_braces"`
	// PreserveOrderWithinBraces is accepted for compatibility. Ordering is
	// controlled by SortItems alone.
	PreserveOrderWithinBraces bool `koanf:"preserve_order_within_braces" toml:"preserve_order_within_braces" yaml:"preserve_order_within_braces"`
	AllowMixedSeparators      bool `koanf:"allow_mixed_separators" toml:"allow_mixed_separators" yaml:"allow_mixed_separators"`
	DeduplicateInputs         bool `koanf:"deduplicate_inputs" toml:"deduplicate_inputs" yaml:"deduplicate_inputs"`
	// ReprocessBraces expands brace syntax found in the input before
	// compressing. When false such input is rejected.
	ReprocessBraces bool `koanf:"reprocess_braces" toml:"reprocess_braces" yaml:"reprocess_braces"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PathSeparator:     "/",
		MaxDepth:          5,
		AllowSegmentSplit: true,
		DeduplicateInputs: true,
	}
}
