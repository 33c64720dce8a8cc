package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/latency-wars/internal/ui/style"
)

// ListItem is one row of a SelectList.
type ListItem struct {
	Label    string
	Selected bool
	Focused  bool
}

// SelectList renders rows whose highlighted state is supplied by the caller.
// Selection and keyboard focus are independent: a row may be focused,
// selected, both or neither.
type SelectList struct {
	items []ListItem
	empty string

	rowStyle      lipgloss.Style
	selectedStyle lipgloss.Style
	emptyStyle    lipgloss.Style
	cursorStyle   lipgloss.Style
}

const (
	focusMarker   = "▶ "
	unfocusMarker = "  "
)

// NewSelectList creates an empty list that shows emptyText when it has no rows.
func NewSelectList(emptyText string) *SelectList {
	palette := style.DefaultPalette()

	return &SelectList{
		empty: emptyText,

		rowStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1),

		selectedStyle: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Selection).
			Padding(0, 1).
			Bold(true),

		emptyStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Italic(true).
			Padding(0, 1),

		cursorStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),
	}
}

// SetItems replaces all rows.
func (l *SelectList) SetItems(items []ListItem) *SelectList {
	l.items = items
	return l
}

// Len returns the number of rows.
func (l *SelectList) Len() int {
	return len(l.items)
}

// View renders the list
func (l *SelectList) View() string {
	if len(l.items) == 0 {
		if l.empty == "" {
			return ""
		}
		return unfocusMarker + l.emptyStyle.Render(l.empty)
	}

	rows := make([]string, 0, len(l.items))
	for _, item := range l.items {
		marker := unfocusMarker
		if item.Focused {
			marker = l.cursorStyle.Render(focusMarker)
		}

		rowStyle := l.rowStyle
		if item.Selected {
			rowStyle = l.selectedStyle
		}

		rows = append(rows, marker+rowStyle.Render(item.Label))
	}

	return strings.Join(rows, "\n")
}
