package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// TextRenderer writes plain text without colors or styling
type TextRenderer struct {
	w   io.Writer
	now func() time.Time
}

// NewText creates a plain text renderer
func NewText(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w, now: time.Now}
}

// RenderResult renders a command result as plain text
func (r *TextRenderer) RenderResult(result interface{}) error {
	v, ok := viewOf(result, r.now())
	if !ok {
		_, err := fmt.Fprintf(r.w, "%+v\n", result)
		return err
	}
	_, err := io.WriteString(r.w, r.render(v))
	return err
}

func (r *TextRenderer) render(v view) string {
	var b strings.Builder
	if v.Title != "" {
		b.WriteString(v.Title + "\n")
	}
	if v.Lead != "" {
		b.WriteString(v.Lead + "\n")
	}

	width := labelWidth(v.Fields)
	for _, f := range v.Fields {
		if f.Value == "" {
			continue
		}
		fmt.Fprintf(&b, "  %-*s %s\n", width+1, f.Label+":", f.Value)
	}

	if d := strings.TrimSpace(v.Description); d != "" {
		b.WriteString("\n" + d + "\n")
	}

	for _, s := range v.Sections {
		b.WriteString("\n" + s.Title + ":\n")
		for _, item := range s.Items {
			b.WriteString("  - " + item + "\n")
		}
	}

	if v.Table != nil && len(v.Table.Rows) > 0 {
		b.WriteString("\n")
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(v.Table.Header, "\t"))
		for _, row := range v.Table.Rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		_ = tw.Flush()
	}
	return b.String()
}

func labelWidth(fields []field) int {
	width := 0
	for _, f := range fields {
		if f.Value != "" && len(f.Label) > width {
			width = len(f.Label)
		}
	}
	return width
}

// RenderError renders an error as plain text
func (r *TextRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.w, "Error: %s\n", errorText(err))
	return werr
}

// RenderMessage renders a simple message
func (r *TextRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.w, msg)
	return err
}
