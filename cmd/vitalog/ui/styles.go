// Package ui provides the terminal styling and view components for the
// vitalog history interface.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vitalog/internal/taxonomy"
)

var (
	// Light mode colors
	LightBackground = lipgloss.Color("#f5f7f8")
	LightForeground = lipgloss.Color("#17333a")
	LightPrimary    = lipgloss.Color("#1A9EAD") // Teal
	LightAccent     = lipgloss.Color("#FF7E36") // Orange
	LightMuted      = lipgloss.Color("#8aa0a6")
	LightBorder     = lipgloss.Color("#d4dee1")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark mode colors
	DarkBackground = lipgloss.Color("#101c1f")
	DarkForeground = lipgloss.Color("#e8f0f1")
	DarkPrimary    = lipgloss.Color("#1A9EAD")
	DarkAccent     = lipgloss.Color("#FF7E36")
	DarkMuted      = lipgloss.Color("#5d7479")
	DarkBorder     = lipgloss.Color("#27393e")
	DarkCard       = lipgloss.Color("#16262b")

	// Status colors, shared by both modes
	StatusExcellent = lipgloss.Color("#4CAF50")
	StatusGood      = lipgloss.Color("#8BC34A")
	StatusRegular   = lipgloss.Color("#FFC107")
	StatusBad       = lipgloss.Color("#FF7E36")
	StatusTerrible  = lipgloss.Color("#e53935")
)

// Theme holds the active color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light color scheme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark color scheme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeByName resolves the configured theme name; anything other than
// "light" selects dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds the styled components used across the history views.
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	Card       lipgloss.Style
	CardHeader lipgloss.Style
	Group      lipgloss.Style

	PageCurrent lipgloss.Style
	PageButton  lipgloss.Style

	Checked   lipgloss.Style
	Unchecked lipgloss.Style
	Partial   lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			MarginBottom(1),

		CardHeader: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Group: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		PageCurrent: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		PageButton: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 1),

		Checked: lipgloss.NewStyle().
			Foreground(theme.Primary),

		Unchecked: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Partial: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Success: lipgloss.NewStyle().
			Foreground(StatusExcellent).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(StatusTerrible).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(StatusRegular).
			Bold(true),
	}
}

// DefaultStyles returns styles with the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}

// StatusStyle maps a derived value status to its display style.
func (s Styles) StatusStyle(st taxonomy.Status) lipgloss.Style {
	switch st {
	case taxonomy.StatusExcellent:
		return lipgloss.NewStyle().Foreground(StatusExcellent)
	case taxonomy.StatusGood:
		return lipgloss.NewStyle().Foreground(StatusGood)
	case taxonomy.StatusRegular:
		return lipgloss.NewStyle().Foreground(StatusRegular)
	case taxonomy.StatusBad:
		return lipgloss.NewStyle().Foreground(StatusBad)
	case taxonomy.StatusTerrible:
		return lipgloss.NewStyle().Foreground(StatusTerrible)
	default:
		return s.Muted
	}
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	return s.Muted.Render(strings.Repeat("─", width))
}
