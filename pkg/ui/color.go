// Package ui decides whether output should carry ANSI colour.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode represents the user's colour preference
type ColorMode int

const (
	// ColorAuto colours output only when writing to a colour-capable terminal
	ColorAuto ColorMode = iota
	// ColorAlways colours output unconditionally
	ColorAlways
	// ColorNever never colours output
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a string into a ColorMode value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "on", "yes":
		return ColorAlways, nil
	case "never", "off", "no":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// Enabled resolves the mode against the destination writer.
func (m ColorMode) Enabled(out io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return DetectColor(out)
	}
}

// DetectColor reports whether out is a terminal that should receive colour.
// Anything that is not an *os.File is treated as a pipe.
func DetectColor(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	file, ok := out.(*os.File)
	if !ok {
		return false
	}

	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}
