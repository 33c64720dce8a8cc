package ui

import (
	"fmt"

	"github.com/rovshanmuradov/latency-wars/internal/dashboard"
)

// Fixed dashboard text.
const (
	Heading            = "Latency Wars - Trading Bots Performance"
	BotBLabel          = "Bot B (Fast Simple Momentum) Final PnL:"
	BotAHeading        = "Bot A (Smart ML) Performance by Latency:"
	DetailsPlaceholder = "Trade stats and charts would appear here."
	RunEvaluationLabel = "Run Evaluation"
)

// BotBLine labels Bot B's final PnL.
func BotBLine(pnl float64) string {
	return fmt.Sprintf("%s %.2f", BotBLabel, pnl)
}

// LatencyRow labels a single Bot A result.
func LatencyRow(r dashboard.LatencyResult) string {
	return fmt.Sprintf("Latency %d ticks: PnL %.2f", r.LatencyTicks, r.PnL)
}

// DetailsHeader labels the details panel for a selected bucket.
func DetailsHeader(latency uint32) string {
	return fmt.Sprintf("Details for latency: %d ticks", latency)
}
