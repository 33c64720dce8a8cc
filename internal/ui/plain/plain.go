// Package plain prints a dashboard snapshot as text for non-interactive use.
package plain

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/rovshanmuradov/latency-wars/internal/dashboard"
	"github.com/rovshanmuradov/latency-wars/internal/ui"
)

const (
	headerLatency  = "Latency (ticks)"
	headerPnL      = "PnL"
	headerSelected = "Selected"
)

// Renderer writes snapshots to an io.Writer.
type Renderer struct{}

// New returns a plain-text renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the heading, Bot B's PnL, a table of Bot A's results and,
// when a latency is selected, its details.
func (r *Renderer) Render(w io.Writer, snap dashboard.Snapshot) error {
	rule := strings.Repeat("-", len(ui.Heading))

	if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n%s\n\n%s\n",
		ui.Heading, rule, ui.BotBLine(snap.BotBFinalPnL), rule, ui.BotAHeading); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if len(snap.BotALatencyResults) == 0 {
		if _, err := fmt.Fprintln(w, "  (no results)"); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
	} else if err := renderTable(w, snap); err != nil {
		return err
	}

	if snap.HasSelection {
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n",
			ui.DetailsHeader(snap.SelectedLatency), ui.DetailsPlaceholder); err != nil {
			return fmt.Errorf("write details: %w", err)
		}
	}

	return nil
}

func renderTable(w io.Writer, snap dashboard.Snapshot) error {
	// Header text is printed as written rather than upper-cased.
	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header(headerLatency, headerPnL, headerSelected)

	for _, res := range snap.BotALatencyResults {
		selected := ""
		if snap.IsSelected(res.LatencyTicks) {
			selected = "*"
		}
		if err := table.Append(
			fmt.Sprintf("%d", res.LatencyTicks),
			fmt.Sprintf("%.2f", res.PnL),
			selected,
		); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
