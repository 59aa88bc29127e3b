// Package styles defines the visual styling for home-symlink's terminal
// output.
//
// Styles are declared in styles.yaml under semantic names (Linked,
// Unlinked, Mixed...) with adaptive colors that adjust to light and dark
// terminal themes. Build turns them into lipgloss styles bound to a
// renderer, so the color profile follows the output being written to.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Names used by the renderers
const (
	Header   = "Header"
	Linked   = "Linked"
	Unlinked = "Unlinked"
	Error    = "Error"
	Empty    = "Empty"
	Mixed    = "Mixed"
	Planned  = "Planned"
	Muted    = "Muted"
)

// Default returns the embedded styles configuration. If the embedded
// file cannot be parsed every style is left plain.
func Default() *Config {
	cfg, err := LoadStylesFromData(embeddedStyles)
	if err != nil {
		return &Config{}
	}
	return cfg
}

// LoadStylesFromData parses a styles configuration
func LoadStylesFromData(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}
	return &config, nil
}

// Registry maps semantic names to lipgloss styles
type Registry map[string]lipgloss.Style

// Build creates the lipgloss styles of cfg for renderer r
func (c *Config) Build(r *lipgloss.Renderer) Registry {
	colors := make(map[string]lipgloss.AdaptiveColor, len(c.Colors))
	for name, def := range c.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(Registry, len(c.Styles))
	for name, def := range c.Styles {
		registry[name] = buildStyle(r, def, colors)
	}
	return registry
}

// Render applies the named style to s. Unknown names leave s unchanged.
func (r Registry) Render(name, s string) string {
	style, ok := r[name]
	if !ok {
		return s
	}
	return style.Render(s)
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	return style
}
