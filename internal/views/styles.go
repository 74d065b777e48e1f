package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the picker
type Styles struct {
	Prompt        lipgloss.Style
	Hint          lipgloss.Style
	Cursor        lipgloss.Style
	Marker        lipgloss.Style
	Normal        lipgloss.Style
	Match         lipgloss.Style
	Selected      lipgloss.Style
	SelectedMatch lipgloss.Style
	Elision       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Prompt:        lipgloss.NewStyle(),
		Hint:          lipgloss.NewStyle().Faint(true),
		Cursor:        lipgloss.NewStyle().Background(lipgloss.Color("78")).Foreground(lipgloss.Color("0")), // green block
		Marker:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),                    // yellow
		Normal:        lipgloss.NewStyle(),
		Match:         lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Selected:      lipgloss.NewStyle().Bold(true),
		SelectedMatch: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Elision:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// PlainStyles renders everything unstyled
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Prompt:        plain,
		Hint:          plain,
		Cursor:        plain,
		Marker:        plain,
		Normal:        plain,
		Match:         plain,
		Selected:      plain,
		SelectedMatch: plain,
		Elision:       plain,
	}
}
