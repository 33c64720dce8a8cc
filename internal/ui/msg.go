package ui

import tea "github.com/charmbracelet/bubbletea"

// RouterMsg represents navigation between screens
type RouterMsg struct {
	To Route
}

// Navigate returns a command that requests navigation to route.
func Navigate(route Route) tea.Cmd {
	return func() tea.Msg {
		return RouterMsg{To: route}
	}
}

// Route represents different screens in the application
type Route int

const (
	RouteDashboard Route = iota
	RouteHelp
)

// String returns the string representation of the route
func (r Route) String() string {
	switch r {
	case RouteDashboard:
		return "dashboard"
	case RouteHelp:
		return "help"
	default:
		return "unknown"
	}
}
