// Package highlight colours the braces and commas of a brace expression by
// nesting depth.
package highlight

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

//go:embed palette.yaml
var embeddedPalette []byte

var namedColors = map[string]termenv.ANSIColor{
	"black":          termenv.ANSIBlack,
	"red":            termenv.ANSIRed,
	"green":          termenv.ANSIGreen,
	"yellow":         termenv.ANSIYellow,
	"blue":           termenv.ANSIBlue,
	"magenta":        termenv.ANSIMagenta,
	"cyan":           termenv.ANSICyan,
	"white":          termenv.ANSIWhite,
	"bright-black":   termenv.ANSIBrightBlack,
	"bright-red":     termenv.ANSIBrightRed,
	"bright-green":   termenv.ANSIBrightGreen,
	"bright-yellow":  termenv.ANSIBrightYellow,
	"bright-blue":    termenv.ANSIBrightBlue,
	"bright-magenta": termenv.ANSIBrightMagenta,
	"bright-cyan":    termenv.ANSIBrightCyan,
	"bright-white":   termenv.ANSIBrightWhite,
}

// DefaultPalette returns the colour names shipped with the binary.
func DefaultPalette() []string {
	var doc struct {
		Palette []string `yaml:"palette"`
	}
	if err := yaml.Unmarshal(embeddedPalette, &doc); err != nil || len(doc.Palette) == 0 {
		return []string{"cyan", "yellow", "magenta", "green", "blue"}
	}
	return doc.Palette
}

// ParseColor resolves a colour name, an ANSI-256 index or a #rrggbb value.
func ParseColor(s string) (termenv.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		if _, err := strconv.ParseUint(name[1:], 16, 32); err == nil {
			return termenv.RGBColor(name), nil
		}
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n <= 255 {
		return termenv.ANSI256Color(n), nil
	}
	return nil, fmt.Errorf("unknown color: %q", s)
}

// Highlighter wraps brace syntax in ANSI colour sequences.
type Highlighter struct {
	colors []termenv.Color
}

// New builds a highlighter from colour names. An empty list uses the
// default palette.
func New(palette []string) (*Highlighter, error) {
	if len(palette) == 0 {
		palette = DefaultPalette()
	}

	h := &Highlighter{colors: make([]termenv.Color, 0, len(palette))}
	for _, name := range palette {
		c, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		h.colors = append(h.colors, c)
	}
	return h, nil
}

// Default returns a highlighter using the default palette.
func Default() *Highlighter {
	h, err := New(nil)
	if err != nil {
		// the embedded palette only holds named colours
		panic(err)
	}
	return h
}

func (h *Highlighter) paint(s string, depth int) string {
	return termenv.String(s).Foreground(h.colors[depth%len(h.colors)]).String()
}

// Braces colours every '{' and '}' with the palette entry for its depth and
// every ',' inside a group with the entry of that group. Commas outside any
// group are path text and stay plain. Depth never drops below zero, so a
// stray closer uses the first entry.
func (h *Highlighter) Braces(expr string) string {
	var b strings.Builder
	b.Grow(len(expr) * 4)

	depth := 0
	for i := 0; i < len(expr); i++ {
		switch ch := expr[i]; ch {
		case '{':
			b.WriteString(h.paint("{", depth))
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
			b.WriteString(h.paint("}", depth))
		case ',':
			if depth == 0 {
				b.WriteByte(ch)
				continue
			}
			b.WriteString(h.paint(",", depth-1))
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
