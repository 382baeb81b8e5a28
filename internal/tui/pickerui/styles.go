package pickerui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/swipecal/swipecal/internal/config"
)

// Styles is the set of lipgloss styles the picker renders with.
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Weekday   lipgloss.Style
	Cell      lipgloss.Style
	Focused   lipgloss.Style
	Selected  lipgloss.Style
	RangeEdge lipgloss.Style
	InRange   lipgloss.Style
	Today     lipgloss.Style
	Muted     lipgloss.Style
	Disabled  lipgloss.Style
	Footer    lipgloss.Style
	Status    lipgloss.Style
}

// NewStyles builds the style set, applying the theme's color overrides on top
// of the defaults.
func NewStyles(theme config.Theme) Styles {
	accent := colorOr(theme.AccentColor, "99")
	selected := colorOr(theme.SelectedColor, "212")
	inRange := colorOr(theme.RangeColor, "61")
	today := colorOr(theme.TodayColor, "42")
	muted := colorOr(theme.MutedColor, "245")

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			PaddingLeft(1).
			MarginBottom(1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center),

		Weekday: lipgloss.NewStyle().
			Bold(true).
			Foreground(muted).
			Padding(0, 1),

		Cell: lipgloss.NewStyle().
			Padding(0, 1),

		Focused: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(selected).
			Bold(true).
			Reverse(true),

		Selected: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(selected).
			Bold(true),

		RangeEdge: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(selected).
			Bold(true).
			Underline(true),

		InRange: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(inRange),

		Today: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(today).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(muted),

		Disabled: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("238")).
			Strikethrough(true),

		Footer: lipgloss.NewStyle().
			Foreground(muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(muted).
			MarginTop(1),

		Status: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
	}
}

func colorOr(value, fallback string) lipgloss.Color {
	if value == "" {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(value)
}
