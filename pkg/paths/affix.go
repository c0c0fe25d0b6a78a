package paths

import "unicode/utf8"

// CommonPrefix returns the longest prefix shared by every string in ss.
func CommonPrefix(ss []string) string {
	if len(ss) == 0 {
		return ""
	}

	first := ss[0]
	n := len(first)
	for _, s := range ss[1:] {
		if len(s) < n {
			n = len(s)
		}
		i := 0
		for i < n && first[i] == s[i] {
			i++
		}
		n = i
		if n == 0 {
			return ""
		}
	}

	// back off so the prefix never ends inside a multi-byte rune
	for n > 0 && n < len(first) && !utf8.RuneStart(first[n]) {
		n--
	}
	return first[:n]
}

// CommonSuffix returns the longest suffix shared by every string in ss. The
// strings are compared end-aligned, extending backwards until the first
// mismatch or until the shortest string is exhausted.
func CommonSuffix(ss []string) string {
	if len(ss) == 0 {
		return ""
	}

	first := ss[0]
	n := len(first)
	for _, s := range ss[1:] {
		if len(s) < n {
			n = len(s)
		}
		i := 0
		for i < n && first[len(first)-1-i] == s[len(s)-1-i] {
			i++
		}
		n = i
		if n == 0 {
			return ""
		}
	}

	// the suffix must start on a rune boundary
	start := len(first) - n
	for start < len(first) && !utf8.RuneStart(first[start]) {
		start++
	}
	return first[start:]
}
