package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto", or a style file path
	Width int    // word wrap width, 0 keeps glamour's default
}

// NewGlamourRenderer creates a markdown renderer that picks its style from
// the terminal and wraps at 80 columns, like the rest of reskin's output
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto", Width: 80}
}

// Render formats markdown content and passes everything else through
func (r *GlamourRenderer) Render(content string, format string) string {
	// Plain .txt topics are already laid out
	if format != ".md" {
		return content
	}

	renderer, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		// A bad style path still leaves the help readable
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	var options []glamour.TermRendererOption

	switch {
	case os.Getenv("NO_COLOR") != "":
		// NO_COLOR wins over any configured style
		options = append(options, glamour.WithStandardStyle("notty"))
	case r.Style != "" && r.Style != "auto":
		options = append(options, glamour.WithStylePath(r.Style))
	default:
		options = append(options, glamour.WithAutoStyle())
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	return options
}
