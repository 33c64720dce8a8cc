package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/latency-wars/internal/dashboard"
	"github.com/rovshanmuradov/latency-wars/internal/ui"
	"github.com/rovshanmuradov/latency-wars/internal/ui/component"
	"github.com/rovshanmuradov/latency-wars/internal/ui/router"
	"github.com/rovshanmuradov/latency-wars/internal/ui/style"
)

const (
	minSeparatorWidth = 20
	maxSeparatorWidth = 72
	compactHelpWidth  = 60
	emptyResultsText  = "No results yet. Run an evaluation."
)

// DashboardScreen draws the bot summaries and routes key presses to the
// board's transitions. The focus index walks the latency rows and then the
// Run Evaluation button, which sits at index len(rows).
type DashboardScreen struct {
	width  int
	height int
	keyMap ui.KeyMap
	board  dashboard.Board
	logger *zap.Logger

	list    *component.SelectList
	button  *component.Button
	helpBar *component.HelpBar

	focus  int
	status string
}

// NewDashboardScreen creates the dashboard screen for board.
func NewDashboardScreen(board dashboard.Board, logger *zap.Logger) *DashboardScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	keyMap := ui.DefaultKeyMap()

	return &DashboardScreen{
		keyMap:  keyMap,
		board:   board,
		logger:  logger.Named("screen.dashboard"),
		list:    component.NewSelectList(emptyResultsText),
		button:  component.NewButton(ui.RunEvaluationLabel),
		helpBar: component.NewHelpBar().SetKeyBindings(keyMap.ContextualHelp(ui.RouteDashboard)),
		focus:   len(board.Snapshot().BotALatencyResults),
	}
}

// Init initializes the dashboard screen
func (s *DashboardScreen) Init() tea.Cmd {
	return nil
}

// Update handles screen updates
func (s *DashboardScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	rows := s.board.Snapshot().BotALatencyResults
	if s.focus > len(rows) {
		s.focus = len(rows)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s, s.handleKey(msg, rows)
	case tea.MouseMsg:
		s.handleMouse(msg, rows)
	}
	return s, nil
}

func (s *DashboardScreen) handleKey(msg tea.KeyMsg, rows []dashboard.LatencyResult) tea.Cmd {
	switch {
	case key.Matches(msg, s.keyMap.Quit):
		return tea.Quit

	case key.Matches(msg, s.keyMap.Help):
		return ui.Navigate(ui.RouteHelp)

	case key.Matches(msg, s.keyMap.Up):
		s.moveUp(len(rows))

	case key.Matches(msg, s.keyMap.Down):
		s.moveDown(len(rows))

	case key.Matches(msg, s.keyMap.RunEvaluation):
		s.runEvaluation()

	case key.Matches(msg, s.keyMap.Enter):
		if s.focus < len(rows) {
			s.selectRow(rows, s.focus)
		} else {
			s.runEvaluation()
		}
	}
	return nil
}

// handleMouse maps a left click onto a latency row or the button using the
// line positions of the current layout.
func (s *DashboardScreen) handleMouse(msg tea.MouseMsg, rows []dashboard.LatencyResult) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	_, rowsTop, buttonLine := s.render(s.board.Snapshot())

	switch {
	case msg.Y == buttonLine:
		s.runEvaluation()
	case len(rows) > 0 && msg.Y >= rowsTop && msg.Y < rowsTop+s.list.Len():
		s.selectRow(rows, msg.Y-rowsTop)
	}
}

func (s *DashboardScreen) selectRow(rows []dashboard.LatencyResult, i int) {
	s.focus = i
	s.board.SelectLatency(rows[i].LatencyTicks)
	s.status = ""
}

func (s *DashboardScreen) runEvaluation() {
	s.board.RunEvaluation()
	// Keep focus on the button; the row count may have changed.
	s.focus = len(s.board.Snapshot().BotALatencyResults)
	s.status = "Evaluation complete"
}

// moveUp moves focus up, wrapping from the first row to the button
func (s *DashboardScreen) moveUp(rows int) {
	if s.focus > 0 {
		s.focus--
	} else {
		s.focus = rows
	}
}

// moveDown moves focus down, wrapping from the button to the first row
func (s *DashboardScreen) moveDown(rows int) {
	if s.focus < rows {
		s.focus++
	} else {
		s.focus = 0
	}
}

// Focus returns the focused index; len(rows) means the button.
func (s *DashboardScreen) Focus() int {
	return s.focus
}

// View renders the dashboard screen
func (s *DashboardScreen) View() string {
	view, _, _ := s.render(s.board.Snapshot())
	return view
}

// render draws snap and reports the line of the first latency row and the
// line of the button. The container adds no vertical padding, so these are
// also terminal rows when the screen fills the window.
func (s *DashboardScreen) render(snap dashboard.Snapshot) (view string, rowsTop, buttonLine int) {
	sep := style.Separator(s.separatorWidth())

	var b strings.Builder
	line := func() int { return strings.Count(b.String(), "\n") }

	b.WriteString(style.TitleStyle.Render(ui.Heading))
	b.WriteString("\n")
	b.WriteString(sep)
	b.WriteString("\n")

	b.WriteString(style.TextStyle.Render(ui.BotBLabel))
	b.WriteString(" ")
	b.WriteString(style.PnLStyle(snap.BotBFinalPnL).Render(fmt.Sprintf("%.2f", snap.BotBFinalPnL)))
	b.WriteString("\n")
	b.WriteString(sep)
	b.WriteString("\n")

	b.WriteString(style.SubHeaderStyle.Render(ui.BotAHeading))
	b.WriteString("\n")
	rowsTop = line()
	b.WriteString(s.renderRows(snap))
	b.WriteString("\n")

	if snap.HasSelection {
		b.WriteString(sep)
		b.WriteString("\n")
		b.WriteString(s.renderDetails(snap.SelectedLatency))
		b.WriteString("\n")
	}

	b.WriteString(sep)
	b.WriteString("\n")
	buttonLine = line()
	b.WriteString(s.button.SetFocused(s.focus >= len(snap.BotALatencyResults)).View())

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(style.StatusStyle.Render(s.status))
	}

	b.WriteString("\n")
	b.WriteString(s.helpBar.View())

	return style.ContainerStyle.Render(b.String()), rowsTop, buttonLine
}

func (s *DashboardScreen) renderRows(snap dashboard.Snapshot) string {
	items := make([]component.ListItem, len(snap.BotALatencyResults))
	for i, r := range snap.BotALatencyResults {
		items[i] = component.ListItem{
			Label:    ui.LatencyRow(r),
			Selected: snap.IsSelected(r.LatencyTicks),
			Focused:  i == s.focus,
		}
	}
	return s.list.SetItems(items).View()
}

func (s *DashboardScreen) renderDetails(latency uint32) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		style.SubHeaderStyle.Render(ui.DetailsHeader(latency)),
		style.MutedStyle.Render(ui.DetailsPlaceholder),
	)
	return style.PanelStyle.Render(content)
}

func (s *DashboardScreen) separatorWidth() int {
	w := s.width - 4
	if w > maxSeparatorWidth {
		w = maxSeparatorWidth
	}
	if w < minSeparatorWidth {
		w = minSeparatorWidth
	}
	return w
}

// SetSize sets the screen dimensions
func (s *DashboardScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.helpBar.SetWidth(width).SetCompact(width > 0 && width < compactHelpWidth)
}
