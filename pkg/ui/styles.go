package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors for light and dark terminals
var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// styles are bound to one lipgloss renderer so color detection follows
// the writer, not stdout
type styles struct {
	Title   lipgloss.Style
	Lead    lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Section lipgloss.Style
	Item    lipgloss.Style
	Warning lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Title:   r.NewStyle().Bold(true).Foreground(colorAccent),
		Lead:    r.NewStyle().Foreground(colorSuccess),
		Label:   r.NewStyle().Foreground(colorMuted),
		Value:   r.NewStyle(),
		Section: r.NewStyle().Bold(true).MarginTop(1),
		Item:    r.NewStyle().PaddingLeft(2),
		Warning: r.NewStyle().PaddingLeft(2).Foreground(colorWarning),
	}
}
