package component

import (
	"github.com/rovshanmuradov/latency-wars/internal/ui/style"
)

// Button is a single clickable label.
type Button struct {
	Label   string
	Focused bool
}

// NewButton creates an unfocused button.
func NewButton(label string) *Button {
	return &Button{Label: label}
}

// SetFocused sets whether the button has keyboard focus.
func (b *Button) SetFocused(focused bool) *Button {
	b.Focused = focused
	return b
}

// View renders the button
func (b *Button) View() string {
	if b.Focused {
		return focusMarker + style.ButtonActiveStyle.Render("[ "+b.Label+" ]")
	}
	return unfocusMarker + style.ButtonStyle.Render("[ "+b.Label+" ]")
}
