package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/braces/pkg/config"
	"github.com/arthur-debert/braces/pkg/highlight"
)

func TestNewPrinter_Highlighter(t *testing.T) {
	custom, err := highlight.New([]string{"red", "green"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		output config.OutputConfig
		want   *highlight.Highlighter
	}{
		{"colour off", config.OutputConfig{Color: "never"}, nil},
		{"buffer is not a terminal", config.OutputConfig{Color: "auto"}, nil},
		{"default palette", config.OutputConfig{Color: "always"}, highlight.Default()},
		{"empty palette", config.OutputConfig{Color: "always", Palette: []string{}}, highlight.Default()},
		{"custom palette", config.OutputConfig{Color: "always", Palette: []string{"red", "green"}}, custom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := newPrinter(&config.Config{Output: tt.output}, &bytes.Buffer{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.highlight)
		})
	}
}

func TestNewPrinter_DefaultPaletteColours(t *testing.T) {
	p, err := newPrinter(&config.Config{Output: config.OutputConfig{Color: "always"}}, &bytes.Buffer{})
	require.NoError(t, err)

	got, err := p.render([]string{"a/{b,c}"})
	require.NoError(t, err)
	assert.Equal(t, "a/\x1b[36m{\x1b[0mb\x1b[36m,\x1b[0mc\x1b[36m}\x1b[0m", got)
}
