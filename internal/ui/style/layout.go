package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var palette = DefaultPalette()

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0, 0, 0)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true)
)

// Layout styles
var (
	ContainerStyle = lipgloss.NewStyle().
			Padding(0, 2)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted).
			Padding(0, 2)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(palette.TextMuted)
)

// Text styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(palette.Text)

	MutedStyle = lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Italic(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(palette.Profit)
)

// Button styles
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Secondary).
			Padding(0, 2).
			Bold(true)

	ButtonActiveStyle = lipgloss.NewStyle().
				Foreground(palette.Background).
				Background(palette.Primary).
				Padding(0, 2).
				Bold(true)
)

// PnLStyle colors a PnL figure by sign.
func PnLStyle(pnl float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(palette.PnLColor(pnl)).Bold(true)
}

// Separator renders a horizontal rule of the given width.
func Separator(width int) string {
	if width < 1 {
		width = 1
	}
	return SeparatorStyle.Render(strings.Repeat("─", width))
}
