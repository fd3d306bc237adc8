package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// descriptionWidth wraps rendered markdown descriptions
const descriptionWidth = 80

// TerminalRenderer writes styled output: lipgloss for layout, pterm for
// tables and prefixes, glamour for markdown descriptions
type TerminalRenderer struct {
	w      io.Writer
	styles styles
	now    func() time.Time
}

// NewTerminal creates a styled renderer for w
func NewTerminal(w io.Writer) *TerminalRenderer {
	renderer := lipgloss.NewRenderer(w)
	logger := logging.GetLogger("ui.terminal")
	logger.Debug().
		Str("colorProfile", fmt.Sprintf("%v", renderer.ColorProfile())).
		Msg("Terminal renderer created")

	return &TerminalRenderer{
		w:      w,
		styles: newStyles(renderer),
		now:    time.Now,
	}
}

// RenderResult renders a command result with styling
func (r *TerminalRenderer) RenderResult(result interface{}) error {
	v, ok := viewOf(result, r.now())
	if !ok {
		_, err := fmt.Fprintf(r.w, "%+v\n", result)
		return err
	}
	out, err := r.render(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.w, out)
	return err
}

func (r *TerminalRenderer) render(v view) (string, error) {
	s := r.styles
	var blocks []string

	if v.Title != "" {
		blocks = append(blocks, s.Title.Render(v.Title))
	}
	if v.Lead != "" {
		blocks = append(blocks, s.Lead.Render(v.Lead))
	}

	width := labelWidth(v.Fields)
	for _, f := range v.Fields {
		if f.Value == "" {
			continue
		}
		label := s.Label.Width(width + 2).Render(f.Label + ":")
		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, "  ", label, s.Value.Render(f.Value)))
	}

	if d := strings.TrimSpace(v.Description); d != "" {
		blocks = append(blocks, renderMarkdown(d))
	}

	for _, sec := range v.Sections {
		lines := []string{s.Section.Render(sec.Title)}
		item := s.Item
		if sec.Warn {
			item = s.Warning
		}
		for _, it := range sec.Items {
			lines = append(lines, item.Render("• "+it))
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	if v.Table != nil && len(v.Table.Rows) > 0 {
		data := pterm.TableData{v.Table.Header}
		data = append(data, v.Table.Rows...)
		rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return "", fmt.Errorf("failed to render table: %w", err)
		}
		blocks = append(blocks, "\n"+rendered)
	}

	return strings.Join(blocks, "\n") + "\n", nil
}

// renderMarkdown renders md with glamour and falls back to the raw text
func renderMarkdown(md string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(descriptionWidth),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// RenderError renders an error behind pterm's error prefix
func (r *TerminalRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.w, "%s %s\n", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(errorText(err)))
	return werr
}

// RenderMessage renders a simple message
func (r *TerminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.w, "%s %s\n", pterm.Info.Prefix.Text, msg)
	return err
}
