// internal/dashboard/model.go
package dashboard

import (
	"go.uber.org/zap"
)

// Placeholder results installed by RunEvaluation.
const EvaluatedBotBPnL = 1234.56

var evaluatedLatencyResults = []LatencyResult{
	{LatencyTicks: 1, PnL: 500.0},
	{LatencyTicks: 5, PnL: 600.0},
	{LatencyTicks: 10, PnL: 550.0},
	{LatencyTicks: 100, PnL: 1100.0},
}

// LatencyResult is Bot A's PnL for one latency bucket.
type LatencyResult struct {
	LatencyTicks uint32
	PnL          float64
}

// Snapshot is a copy of the dashboard state taken for a single render pass.
type Snapshot struct {
	BotBFinalPnL       float64
	BotALatencyResults []LatencyResult

	// SelectedLatency is meaningful only when HasSelection is true and is
	// zero otherwise.
	SelectedLatency uint32
	HasSelection    bool
}

// Board is what a renderer needs from the dashboard: a state to draw and the
// two transitions it may trigger in response to input.
type Board interface {
	Snapshot() Snapshot
	SelectLatency(latency uint32)
	RunEvaluation()
}

// Model holds the dashboard state. It is not safe for concurrent use; the
// render loop owns it.
type Model struct {
	botBFinalPnL       float64
	botALatencyResults []LatencyResult
	selectedLatency    uint32
	hasSelection       bool

	logger *zap.Logger
}

// New creates a model with zero PnL, no results and nothing selected.
func New(logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{
		botALatencyResults: []LatencyResult{},
		logger:             logger.Named("dashboard"),
	}
}

// SelectLatency marks a latency bucket as selected. The value is stored even
// if no row currently carries it.
func (m *Model) SelectLatency(latency uint32) {
	m.selectedLatency = latency
	m.hasSelection = true

	m.logger.Debug("Latency selected",
		zap.Uint32("latency_ticks", latency),
		zap.Bool("listed", m.contains(latency)))
}

// RunEvaluation replaces both bot summaries with the placeholder results and
// clears the selection. Prior state has no influence on the outcome.
func (m *Model) RunEvaluation() {
	m.botBFinalPnL = EvaluatedBotBPnL
	m.botALatencyResults = EvaluatedLatencyResults()
	m.selectedLatency = 0
	m.hasSelection = false

	m.logger.Info("Evaluation finished",
		zap.Float64("bot_b_pnl", m.botBFinalPnL),
		zap.Int("latency_buckets", len(m.botALatencyResults)))
}

// BotBFinalPnL returns Bot B's final PnL.
func (m *Model) BotBFinalPnL() float64 {
	return m.botBFinalPnL
}

// BotALatencyResults returns a copy of Bot A's results in display order.
func (m *Model) BotALatencyResults() []LatencyResult {
	return cloneResults(m.botALatencyResults)
}

// SelectedLatency returns the selected bucket and whether one is selected.
func (m *Model) SelectedLatency() (uint32, bool) {
	return m.selectedLatency, m.hasSelection
}

// IsSelected reports whether the given bucket is the current selection.
func (m *Model) IsSelected(latency uint32) bool {
	return m.hasSelection && m.selectedLatency == latency
}

// Snapshot copies the current state.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		BotBFinalPnL:       m.botBFinalPnL,
		BotALatencyResults: cloneResults(m.botALatencyResults),
		SelectedLatency:    m.selectedLatency,
		HasSelection:       m.hasSelection,
	}
}

func (m *Model) contains(latency uint32) bool {
	for _, r := range m.botALatencyResults {
		if r.LatencyTicks == latency {
			return true
		}
	}
	return false
}

// EvaluatedLatencyResults returns a fresh copy of the placeholder results
// installed by RunEvaluation.
func EvaluatedLatencyResults() []LatencyResult {
	return cloneResults(evaluatedLatencyResults)
}

func cloneResults(results []LatencyResult) []LatencyResult {
	out := make([]LatencyResult, len(results))
	copy(out, results)
	return out
}

// IsSelected reports whether the snapshot's selection equals latency.
func (s Snapshot) IsSelected(latency uint32) bool {
	return s.HasSelection && s.SelectedLatency == latency
}
