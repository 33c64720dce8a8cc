// Package router keeps a stack of screens. The root screen is never popped.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one page of the terminal UI.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Router forwards messages to the top screen and handles esc as back
// navigation.
type Router struct {
	stack  []Screen
	width  int
	height int
}

// New creates a router whose root is root.
func New(root Screen) *Router {
	return &Router{stack: []Screen{root}}
}

func (r *Router) top() Screen {
	return r.stack[len(r.stack)-1]
}

// activate sizes the top screen and returns its Init command.
func (r *Router) activate() tea.Cmd {
	s := r.top()
	s.SetSize(r.width, r.height)
	return s.Init()
}

// Init initializes the top screen.
func (r *Router) Init() tea.Cmd {
	return r.top().Init()
}

// Update applies window sizes to the router, pops on esc above the root and
// hands everything else to the top screen.
func (r *Router) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.SetSize(msg.Width, msg.Height)
		return r, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && r.CanGoBack() {
			return r, r.Pop()
		}
	}

	updated, cmd := r.top().Update(msg)
	r.stack[len(r.stack)-1] = updated
	return r, cmd
}

// View renders the top screen.
func (r *Router) View() string {
	return r.top().View()
}

// SetSize records the window size and passes it to the top screen.
func (r *Router) SetSize(width, height int) {
	r.width, r.height = width, height
	r.top().SetSize(width, height)
}

// Push shows s above the current screen.
func (r *Router) Push(s Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return r.activate()
}

// Pop returns to the previous screen. It is a no-op on the root.
func (r *Router) Pop() tea.Cmd {
	if !r.CanGoBack() {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return r.activate()
}

// Clear returns to the root screen.
func (r *Router) Clear() tea.Cmd {
	if !r.CanGoBack() {
		return nil
	}
	r.stack = r.stack[:1]
	return r.activate()
}

// Current returns the top screen.
func (r *Router) Current() Screen {
	return r.top()
}

// Depth returns the number of stacked screens.
func (r *Router) Depth() int {
	return len(r.stack)
}

// CanGoBack reports whether a screen sits above the root.
func (r *Router) CanGoBack() bool {
	return len(r.stack) > 1
}
