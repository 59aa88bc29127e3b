// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"io"
	"os"

	"github.com/arthur-debert/home-symlink/pkg/ui/styles"
	"github.com/arthur-debert/home-symlink/pkg/ui/text"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// New creates a new terminal renderer. Colors are used even when w is not
// a terminal, as asking for this format is asking for them. NO_COLOR
// still wins.
func New(w io.Writer) (*text.Renderer, error) {
	r := lipgloss.NewRenderer(w)
	if r.ColorProfile() == termenv.Ascii && os.Getenv("NO_COLOR") == "" {
		r.SetColorProfile(termenv.ANSI256)
	}

	registry := styles.Default().Build(r)

	table := pterm.DefaultTable
	table.HasHeader = true

	return text.NewStyled(w, registry.Render, table), nil
}
