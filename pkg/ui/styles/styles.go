// Package styles holds the lipgloss styles used for braces' terminal
// messages. Definitions live in an embedded styles.yaml and use adaptive
// colours that follow the terminal background.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var embeddedStyles []byte

type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

type styleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Theme maps semantic names such as "Error" to styles.
type Theme struct {
	styles map[string]lipgloss.Style
}

// Parse builds a theme from YAML with a colors and a styles section. A
// style naming an unknown colour is an error.
func Parse(data []byte) (*Theme, error) {
	var doc struct {
		Colors map[string]colorDef `yaml:"colors"`
		Styles map[string]styleDef `yaml:"styles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	theme := &Theme{styles: make(map[string]lipgloss.Style, len(doc.Styles))}
	for name, def := range doc.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			PaddingLeft(def.PaddingLeft)
		if def.Foreground != "" {
			c, ok := doc.Colors[def.Foreground]
			if !ok {
				return nil, fmt.Errorf("style %s: unknown color %q", name, def.Foreground)
			}
			style = style.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
		}
		theme.styles[name] = style
	}
	return theme, nil
}

// Get returns the named style, or an empty style when it is not defined.
func (t *Theme) Get(name string) lipgloss.Style {
	if style, ok := t.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether the theme defines name.
func (t *Theme) Has(name string) bool {
	_, ok := t.styles[name]
	return ok
}

var defaultTheme = mustParse(embeddedStyles)

func mustParse(data []byte) *Theme {
	theme, err := Parse(data)
	if err != nil {
		// styles.yaml ships with the binary
		panic(err)
	}
	return theme
}

// Default returns the embedded theme.
func Default() *Theme {
	return defaultTheme
}

// GetStyle returns a style from the embedded theme.
func GetStyle(name string) lipgloss.Style {
	return defaultTheme.Get(name)
}
