// Package ui renders command results in different formats.
// It supports terminal (rich), text (plain), JSON and YAML output.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/home-symlink/pkg/errors"
	"github.com/arthur-debert/home-symlink/pkg/ui/json"
	"github.com/arthur-debert/home-symlink/pkg/ui/terminal"
	"github.com/arthur-debert/home-symlink/pkg/ui/text"
	"github.com/arthur-debert/home-symlink/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result (*types.DisplayResult or
	// *types.ListPacksResult)
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// Auto picks the terminal format only for a color capable terminal.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(Resolve(format, output), output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// Resolve replaces FormatAuto by the format detected for output. Writers
// that are not files get plain text.
func Resolve(format Format, output io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}

// Render writes result to output in the given format
func Render(output io.Writer, result interface{}, format Format) error {
	renderer, err := NewRenderer(format, output)
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}
