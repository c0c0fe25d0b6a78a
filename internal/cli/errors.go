package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/braces/pkg/errors"
	"github.com/arthur-debert/braces/pkg/ui/styles"
)

// FormatError renders err for the terminal: the message in the Error style
// followed by one ErrorDetail line per structured detail, sorted by key.
func FormatError(err error) string {
	var b strings.Builder
	b.WriteString(styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	detailStyle := styles.GetStyle("ErrorDetail")
	for _, k := range keys {
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(fmt.Sprintf("%s: %v", k, details[k])))
	}
	return b.String()
}
