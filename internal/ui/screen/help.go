package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rovshanmuradov/latency-wars/internal/ui"
	"github.com/rovshanmuradov/latency-wars/internal/ui/component"
	"github.com/rovshanmuradov/latency-wars/internal/ui/router"
	"github.com/rovshanmuradov/latency-wars/internal/ui/style"
)

// HelpScreen lists every key binding. esc returns to the dashboard via the
// router.
type HelpScreen struct {
	width   int
	height  int
	keyMap  ui.KeyMap
	help    help.Model
	helpBar *component.HelpBar
}

// NewHelpScreen creates the key reference screen.
func NewHelpScreen() *HelpScreen {
	h := help.New()
	h.ShowAll = true

	keyMap := ui.DefaultKeyMap()

	return &HelpScreen{
		keyMap:  keyMap,
		help:    h,
		helpBar: component.NewHelpBar().SetKeyBindings(keyMap.ContextualHelp(ui.RouteHelp)),
	}
}

// Init initializes the help screen
func (s *HelpScreen) Init() tea.Cmd {
	return nil
}

// Update handles screen updates
func (s *HelpScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, s.keyMap.Quit) {
		return s, tea.Quit
	}
	return s, nil
}

// View renders the help screen
func (s *HelpScreen) View() string {
	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(s.help.View(s.keyMap))
	b.WriteString("\n")
	b.WriteString(s.helpBar.View())
	return style.ContainerStyle.Render(b.String())
}

// SetSize sets the screen dimensions
func (s *HelpScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.help.Width = width
	s.helpBar.SetWidth(width)
}
