package cli

import (
	"os"
	"strings"
	"text/template"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/braces/pkg/ui"
)

// templateFuncs are the helpers available to the usage template. Bold is
// dropped when stdout would not be coloured, so piped help stays plain.
func templateFuncs(bold bool) template.FuncMap {
	emphasize := func(s string) string {
		if !bold {
			return s
		}
		return pterm.Bold.Sprint(s)
	}
	return template.FuncMap{
		"bold":      emphasize,
		"upper":     strings.ToUpper,
		"boldUpper": func(s string) string { return emphasize(strings.ToUpper(s)) },
	}
}

func initTemplateFormatting() {
	cobra.AddTemplateFuncs(templateFuncs(ui.DetectColor(os.Stdout)))
}
