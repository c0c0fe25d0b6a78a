// Package pretty lays a brace expression out over several lines, one
// alternative per line, indented under the brace that opened its group.
package pretty

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Braces re-indents expr. A '{' ends its line and its alternatives start at
// the column after it, each ',' ends a line, and a '}' is placed one column
// left of its group's alternatives. ANSI escape sequences are copied through
// and take up no columns.
func Braces(expr string) string {
	var (
		lines []string
		stack []int
		line  strings.Builder
	)

	indent := func() int {
		if len(stack) == 0 {
			return 0
		}
		return stack[len(stack)-1]
	}
	push := func() {
		lines = append(lines, line.String())
		line.Reset()
	}
	visible := func() bool {
		return strings.TrimSpace(ansi.Strip(line.String())) != ""
	}

	for i := 0; i < len(expr); {
		if expr[i] == '\x1b' {
			n := escapeLen(expr[i:])
			line.WriteString(expr[i : i+n])
			i += n
			continue
		}

		switch ch := expr[i]; ch {
		case '{':
			line.WriteByte('{')
			col := ansi.StringWidth(line.String())
			stack = append(stack, col)
			push()
			line.WriteString(strings.Repeat(" ", col))
		case ',':
			line.WriteByte(',')
			push()
			line.WriteString(strings.Repeat(" ", indent()))
		case '}':
			col := indent()
			// escapes on an otherwise blank line move onto the closer
			carry := ""
			if visible() {
				lines = append(lines, strings.TrimSuffix(line.String(), ","))
			} else {
				carry = strings.TrimLeft(line.String(), " ")
			}
			line.Reset()
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			line.WriteString(strings.Repeat(" ", max(col-1, 0)))
			line.WriteString(carry)
			line.WriteByte('}')
		default:
			line.WriteByte(ch)
		}
		i++
	}

	if visible() {
		push()
	}
	return strings.Join(lines, "\n")
}

// escapeLen returns the length of the escape sequence at the start of s.
func escapeLen(s string) int {
	if len(s) < 2 {
		return len(s)
	}
	if s[1] != '[' {
		return 2
	}
	for j := 2; j < len(s); j++ {
		if s[j] >= 0x40 && s[j] <= 0x7e {
			return j + 1
		}
	}
	return len(s)
}
