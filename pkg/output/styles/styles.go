// Package styles defines the visual styling for datename's terminal output.
//
// Colours are adaptive so they hold up on light and dark terminals. Style
// definitions come from the embedded styles.yaml and are bound to a
// lipgloss renderer, so a renderer without colour support yields plain text.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Semantic style names.
const (
	Notice     = "Notice"
	Verb       = "Verb"
	SourcePath = "SourcePath"
	Arrow      = "Arrow"
	TargetPath = "TargetPath"
	Error      = "Error"
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
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Set maps semantic names to styles bound to one renderer.
type Set map[string]lipgloss.Style

// Get returns the named style, or an unstyled one when it is not defined.
func (s Set) Get(name string) lipgloss.Style {
	if style, ok := s[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to text.
func (s Set) Render(name, text string) string {
	return s.Get(name).Render(text)
}

//go:embed styles.yaml
var embeddedStyles []byte

// Parse decodes a styles document.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}
	return &config, nil
}

// Embedded returns the built-in styles document.
func Embedded() *Config {
	config, err := Parse(embeddedStyles)
	if err != nil {
		// The embedded file is part of the binary; fall back to no styling.
		return &Config{}
	}
	return config
}

// Build binds every style of the config to renderer r.
func (c *Config) Build(r *lipgloss.Renderer) Set {
	colors := make(map[string]lipgloss.AdaptiveColor, len(c.Colors))
	for name, def := range c.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	set := make(Set, len(c.Styles))
	for name, def := range c.Styles {
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
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
		set[name] = style
	}
	return set
}
