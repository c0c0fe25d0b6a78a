package paths

import (
	"strings"

	"github.com/arthur-debert/braces/pkg/errors"
)

// SeparatorCandidates are the characters treated as path separators when
// checking an input set for mixed separators.
var SeparatorCandidates = []string{"/", "\\", ":"}

// foreignSeparators returns the candidates that are not part of expected.
func foreignSeparators(expected string) []string {
	var out []string
	for _, sep := range SeparatorCandidates {
		if !strings.Contains(expected, sep) {
			out = append(out, sep)
		}
	}
	return out
}

// ValidateSeparators fails with a MixedSeparators error when any path contains
// a candidate separator other than expected. An empty expected separator
// disables the check.
func ValidateSeparators(paths []string, expected string) error {
	if expected == "" {
		return nil
	}

	foreign := foreignSeparators(expected)
	seen := make(map[string]bool, len(foreign))
	var found []string
	for _, p := range paths {
		for _, sep := range foreign {
			if !seen[sep] && strings.Contains(p, sep) {
				seen[sep] = true
				found = append(found, sep)
			}
		}
		if len(found) == len(foreign) {
			break
		}
	}

	if len(found) > 0 {
		return errors.MixedSeparators(found, expected)
	}
	return nil
}

// NormaliseSeparators rewrites every foreign candidate separator in path to
// target.
func NormaliseSeparators(path, target string) string {
	if target == "" {
		return path
	}
	for _, sep := range foreignSeparators(target) {
		path = strings.ReplaceAll(path, sep, target)
	}
	return path
}

// NormaliseAll applies NormaliseSeparators to a copy of paths.
func NormaliseAll(paths []string, target string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = NormaliseSeparators(p, target)
	}
	return out
}
