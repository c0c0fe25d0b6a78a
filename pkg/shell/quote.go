// Package shell makes brace expressions safe to paste into bash.
package shell

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// QuoteExpression quotes every literal run of expr with bash rules, leaving
// braces and the commas that separate alternatives bare so the shell still
// performs brace expansion. Empty alternatives stay empty.
func QuoteExpression(expr string) (string, error) {
	var (
		out   strings.Builder
		run   strings.Builder
		depth int
	)

	flush := func() error {
		if run.Len() == 0 {
			return nil
		}
		q, err := syntax.Quote(run.String(), syntax.LangBash)
		if err != nil {
			return err
		}
		out.WriteString(q)
		run.Reset()
		return nil
	}

	for i := 0; i < len(expr); i++ {
		ch := expr[i]
		structural := ch == '{' || (depth > 0 && (ch == '}' || ch == ','))
		if !structural {
			run.WriteByte(ch)
			continue
		}

		if err := flush(); err != nil {
			return "", err
		}
		out.WriteByte(ch)
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
		}
	}

	if err := flush(); err != nil {
		return "", err
	}
	return out.String(), nil
}
