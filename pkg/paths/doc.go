// Package paths holds the string-level helpers the brace engine runs over
// path lists before any trie is built.
//
// Paths are opaque strings: nothing here touches the filesystem. The package
// covers two concerns:
//
//   - Separator hygiene: detecting separator characters that do not belong to
//     the configured separator, and rewriting them when mixing is allowed.
//   - Common affixes: the longest shared prefix or suffix of a string set,
//     computed on bytes but never splitting a UTF-8 sequence.
//
// # Separator candidates
//
// The recognised separator characters are "/", "\" and ":". A candidate that
// is contained in the configured separator counts as native, so a separator
// of "::" accepts ":" while still rejecting "/".
package paths
