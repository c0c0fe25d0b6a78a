package braces

import "strings"

// Expand returns the literal strings a brace expression denotes, in
// left-to-right, first-alternative-first order. Text without braces yields a
// single element. An unmatched '{' takes the rest of the string as its
// alternatives and a stray '}' is kept as a literal character.
func Expand(expr string) []string {
	results := []string{""}

	for i := 0; i < len(expr); {
		if expr[i] != '{' {
			j := strings.IndexByte(expr[i:], '{')
			if j < 0 {
				j = len(expr) - i
			}
			lit := expr[i : i+j]
			for k := range results {
				results[k] += lit
			}
			i += j
			continue
		}

		alts, next := splitGroup(expr, i)
		var expanded []string
		for _, alt := range alts {
			expanded = append(expanded, Expand(alt)...)
		}

		product := make([]string, 0, len(results)*len(expanded))
		for _, r := range results {
			for _, e := range expanded {
				product = append(product, r+e)
			}
		}
		results = product
		i = next
	}

	return results
}

// splitGroup splits the group opening at expr[open] on its top-level commas.
// It returns the alternatives and the index just past the closing brace.
func splitGroup(expr string, open int) ([]string, int) {
	var alts []string
	depth := 1
	start := open + 1

	for j := start; j < len(expr); j++ {
		switch expr[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return append(alts, expr[start:j]), j + 1
			}
		case ',':
			if depth == 1 {
				alts = append(alts, expr[start:j])
				start = j + 1
			}
		}
	}

	return append(alts, expr[start:]), len(expr)
}

// hasBraces reports whether s carries brace syntax.
func hasBraces(s string) bool {
	return strings.ContainsAny(s, "{}")
}
