package screen

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/latency-wars/internal/dashboard"
	"github.com/rovshanmuradov/latency-wars/internal/ui"
)

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestScreen(t *testing.T) (*DashboardScreen, *dashboard.Model) {
	t.Helper()
	board := dashboard.New(zap.NewNop())
	s := NewDashboardScreen(board, zap.NewNop())
	s.SetSize(120, 40)
	return s, board
}

func press(t *testing.T, s *DashboardScreen, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = s.Update(msg)
	}
	return cmd
}

func TestDashboardInitialView(t *testing.T) {
	s, _ := newTestScreen(t)
	view := s.View()

	assert.Contains(t, view, ui.Heading)
	assert.Contains(t, view, "Bot B (Fast Simple Momentum) Final PnL: 0.00")
	assert.Contains(t, view, ui.BotAHeading)
	assert.Contains(t, view, emptyResultsText)
	assert.Contains(t, view, ui.RunEvaluationLabel)
	assert.NotContains(t, view, ui.DetailsPlaceholder)
	assert.Equal(t, 0, s.Focus(), "button is focused when there are no rows")
}

func TestDashboardRunEvaluationKey(t *testing.T) {
	s, board := newTestScreen(t)

	press(t, s, runeKey('r'))

	assert.Equal(t, dashboard.EvaluatedBotBPnL, board.BotBFinalPnL())
	assert.Equal(t, 4, s.Focus(), "focus stays on the button")

	view := s.View()
	assert.Contains(t, view, "Bot B (Fast Simple Momentum) Final PnL: 1234.56")
	for _, row := range dashboard.EvaluatedLatencyResults() {
		assert.Contains(t, view, ui.LatencyRow(row))
	}
	assert.NotContains(t, view, emptyResultsText)
	assert.Contains(t, view, "Evaluation complete")
}

func TestDashboardEnterOnButtonRunsEvaluation(t *testing.T) {
	s, board := newTestScreen(t)

	press(t, s, keyEnter)

	assert.Len(t, board.BotALatencyResults(), 4)
}

func TestDashboardSelectRow(t *testing.T) {
	s, board := newTestScreen(t)
	press(t, s, runeKey('r'))

	// Down from the button wraps to the first row, then moves to the second.
	press(t, s, keyDown, keyDown, keyEnter)

	latency, ok := board.SelectedLatency()
	require.True(t, ok)
	assert.Equal(t, uint32(5), latency)

	view := s.View()
	assert.Contains(t, view, ui.DetailsHeader(5))
	assert.Contains(t, view, ui.DetailsPlaceholder)
	assert.NotContains(t, view, "Evaluation complete")
}

func TestDashboardUpWrapsToLastRow(t *testing.T) {
	s, board := newTestScreen(t)
	press(t, s, runeKey('r'))

	press(t, s, keyUp, keyEnter)

	latency, ok := board.SelectedLatency()
	require.True(t, ok)
	assert.Equal(t, uint32(100), latency)

	press(t, s, runeKey('j'))
	assert.Equal(t, 4, s.Focus())
	press(t, s, runeKey('j'))
	assert.Equal(t, 0, s.Focus())
	press(t, s, runeKey('k'))
	assert.Equal(t, 4, s.Focus())
}

func TestDashboardEvaluationClearsDetails(t *testing.T) {
	s, board := newTestScreen(t)
	press(t, s, runeKey('r'), keyDown, keyEnter)
	require.Contains(t, s.View(), ui.DetailsPlaceholder)

	press(t, s, runeKey('r'))

	_, ok := board.SelectedLatency()
	assert.False(t, ok)
	assert.NotContains(t, s.View(), ui.DetailsPlaceholder)
}

func TestDashboardShowsUnlistedSelection(t *testing.T) {
	s, board := newTestScreen(t)
	board.SelectLatency(42)

	view := s.View()
	assert.Contains(t, view, ui.DetailsHeader(42))
	assert.Contains(t, view, emptyResultsText)
}

func TestDashboardQuitAndHelp(t *testing.T) {
	s, _ := newTestScreen(t)

	cmd := press(t, s, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	cmd = press(t, s, runeKey('?'))
	require.NotNil(t, cmd)
	assert.Equal(t, ui.RouterMsg{To: ui.RouteHelp}, cmd())
}

func TestDashboardIgnoresOtherMessages(t *testing.T) {
	s, board := newTestScreen(t)

	_, cmd := s.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	assert.Nil(t, cmd)
	assert.Equal(t, dashboard.Snapshot{BotALatencyResults: []dashboard.LatencyResult{}}, board.Snapshot())
}

func leftClick(y int) tea.MouseMsg {
	return tea.MouseMsg{X: 6, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestDashboardClickRowAndButton(t *testing.T) {
	s, board := newTestScreen(t)
	_, _, buttonLine := s.render(board.Snapshot())

	press(t, s, leftClick(buttonLine))
	require.Len(t, board.BotALatencyResults(), 4, "clicking the button runs an evaluation")

	_, rowsTop, _ := s.render(board.Snapshot())
	lines := strings.Split(s.View(), "\n")
	require.Greater(t, len(lines), rowsTop+2)
	assert.Contains(t, lines[rowsTop+2], ui.LatencyRow(dashboard.LatencyResult{LatencyTicks: 10, PnL: 550}))

	press(t, s, leftClick(rowsTop+2))

	latency, ok := board.SelectedLatency()
	require.True(t, ok)
	assert.Equal(t, uint32(10), latency)
	assert.Equal(t, 2, s.Focus())
	assert.Contains(t, s.View(), ui.DetailsHeader(10))
}

func TestDashboardIgnoresOtherClicks(t *testing.T) {
	s, board := newTestScreen(t)
	press(t, s, runeKey('r'))
	_, rowsTop, _ := s.render(board.Snapshot())

	release := leftClick(rowsTop)
	release.Action = tea.MouseActionRelease
	right := leftClick(rowsTop)
	right.Button = tea.MouseButtonRight

	press(t, s, release, right, leftClick(0))

	_, ok := board.SelectedLatency()
	assert.False(t, ok)
}

func TestDashboardViewDoesNotMoveFocus(t *testing.T) {
	s, _ := newTestScreen(t)
	s.focus = 10

	_ = s.View()
	assert.Equal(t, 10, s.Focus())

	press(t, s, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 0, s.Focus(), "update clamps focus to the button")
}

func TestDashboardCompactHelpWhenNarrow(t *testing.T) {
	s, _ := newTestScreen(t)
	assert.Contains(t, s.View(), "run evaluation")

	s.SetSize(40, 20)
	assert.NotContains(t, s.View(), "run evaluation")
}

func TestHelpScreen(t *testing.T) {
	s := NewHelpScreen()
	s.SetSize(120, 40)

	view := s.View()
	assert.Contains(t, view, "Keyboard shortcuts")
	assert.Contains(t, view, "run evaluation")
	assert.Contains(t, view, "esc back")

	_, cmd := s.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = s.Update(runeKey('x'))
	assert.Nil(t, cmd)
}
