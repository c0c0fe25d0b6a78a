// Package braces compresses lists of paths into shell brace expressions and
// expands such expressions back into literal paths.
//
//	braces.Brace([]string{"foo/bar.rs", "foo/baz.rs"}, braces.DefaultConfig())
//	// "foo/{bar,baz}.rs"
//
//	braces.Expand("foo/{bar,baz}.rs")
//	// ["foo/bar.rs", "foo/baz.rs"]
//
// Compression runs a fixed pipeline: separator validation or normalisation,
// optional re-expansion of brace input, deduplication, common suffix
// stripping, trie construction and a bottom-up fold over the trie that turns
// every node into a brace fragment. Every call works on its own copies and
// its own trie, so the functions are safe for concurrent use.
package braces
