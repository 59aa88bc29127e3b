// Package text provides the line oriented report layout. Without a
// styler the output is plain text; the terminal renderer reuses it with
// lipgloss styles.
package text

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/home-symlink/pkg/types"
	"github.com/arthur-debert/home-symlink/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Styler applies a named style from pkg/ui/styles to s
type Styler func(name, s string) string

func plain(_ string, s string) string { return s }

// Renderer writes reports one line per package and per symlink:
//
//	<name> - <aggregate>
//	  <source> -> <destination> - <status>
type Renderer struct {
	output io.Writer
	style  Styler
	table  pterm.TablePrinter
}

// New creates a new plain text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{
		output: output,
		style:  plain,
		table: pterm.TablePrinter{
			HasHeader:     true,
			Separator:     " | ",
			LeftAlignment: true,
		},
	}, nil
}

// NewStyled creates a renderer with the text layout and the given styles
func NewStyled(output io.Writer, style Styler, table pterm.TablePrinter) *Renderer {
	return &Renderer{output: output, style: style, table: table}
}

// RenderResult renders any result type as text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.DisplayResult:
		return r.renderDisplay(v)
	case *types.ListPacksResult:
		return r.renderList(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %s\n", r.style(styles.Error, "Error:"), err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderDisplay(result *types.DisplayResult) error {
	for i, pack := range result.Packs {
		if i > 0 {
			if _, err := fmt.Fprintln(r.output); err != nil {
				return err
			}
		}
		if err := r.renderPack(pack, result.DryRun); err != nil {
			return err
		}
	}

	if result.Command == "status" {
		return nil
	}
	return r.renderTotals(result)
}

func (r *Renderer) renderPack(pack types.DisplayPack, dryRun bool) error {
	header := fmt.Sprintf("%s %s %s",
		r.style(styles.Header, pack.Name),
		r.style(styles.Header, "-"),
		r.style(aggregateStyle(pack.Status), pack.Summary),
	)
	if _, err := fmt.Fprintln(r.output, header); err != nil {
		return err
	}

	for _, s := range pack.Symlinks {
		line := fmt.Sprintf("  %s %s %s - %s",
			s.Source,
			r.style(styles.Muted, "->"),
			s.Destination,
			r.style(statusStyle(s.Status), s.Label),
		)
		if dryRun && s.Action != types.ActionNone {
			line += " " + r.style(styles.Planned, "(would "+string(s.Action)+")")
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderTotals(result *types.DisplayResult) error {
	var line string
	if result.DryRun {
		line = fmt.Sprintf("Dry run: %d would %s, %d skipped", result.Changed, result.Command, result.Skipped)
	} else {
		line = fmt.Sprintf("%d changed, %d failed, %d skipped", result.Changed, result.Failed, result.Skipped)
	}
	if result.Failed > 0 && !result.DryRun {
		line = r.style(styles.Error, line)
	}
	_, err := fmt.Fprintf(r.output, "\n%s\n", line)
	return err
}

func (r *Renderer) renderList(result *types.ListPacksResult) error {
	if len(result.Packs) == 0 {
		_, err := fmt.Fprintln(r.output, "No packages found")
		return err
	}

	data := pterm.TableData{{"Package", "Symlinks", "Status"}}
	for _, p := range result.Packs {
		data = append(data, []string{
			p.Name,
			strconv.Itoa(p.Symlinks),
			r.style(aggregateStyle(p.Status), p.Status),
		})
	}

	out, err := r.table.WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(r.output, out)
	return err
}

// statusStyle maps a symlink state name to its style
func statusStyle(state string) string {
	switch state {
	case "linked":
		return styles.Linked
	case "error":
		return styles.Error
	default:
		return styles.Unlinked
	}
}

// aggregateStyle maps a package summary label to its style
func aggregateStyle(label string) string {
	switch label {
	case "mixed":
		return styles.Mixed
	case "empty":
		return styles.Empty
	default:
		return statusStyle(label)
	}
}
