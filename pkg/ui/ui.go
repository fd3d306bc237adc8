// Package ui renders command results for people and programs. Results are
// turned into a small view model first so the terminal and text renderers
// show the same information; the JSON renderer encodes results directly.
package ui

import (
	"fmt"
	"io"
	"os"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto inspects the writer when it is a file and uses terminal
// output otherwise.
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := w.(*os.File); ok {
			return NewRenderer(DetectFormat(file), w)
		}
		return NewRenderer(FormatTerminal, w)
	case FormatTerminal:
		return NewTerminal(w), nil
	case FormatText:
		return NewText(w), nil
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
