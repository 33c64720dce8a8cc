package plain

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/latency-wars/internal/dashboard"
	"github.com/rovshanmuradov/latency-wars/internal/ui"
)

func TestRenderInitialSnapshot(t *testing.T) {
	var buf bytes.Buffer
	board := dashboard.New(zap.NewNop())

	require.NoError(t, New().Render(&buf, board.Snapshot()))

	out := buf.String()
	assert.Contains(t, out, ui.Heading)
	assert.Contains(t, out, ui.BotBLine(0))
	assert.Contains(t, out, "(no results)")
	assert.NotContains(t, out, ui.DetailsPlaceholder)
}

func TestRenderEvaluatedSnapshot(t *testing.T) {
	var buf bytes.Buffer
	board := dashboard.New(zap.NewNop())
	board.RunEvaluation()
	board.SelectLatency(10)

	require.NoError(t, New().Render(&buf, board.Snapshot()))

	out := buf.String()
	assert.Contains(t, out, ui.BotBLine(1234.56))
	for _, v := range []string{"500.00", "600.00", "550.00", "1100.00"} {
		assert.Contains(t, out, v)
	}
	assert.Contains(t, out, ui.DetailsHeader(10))

	for _, header := range []string{"Latency (ticks)", "PnL", "Selected"} {
		assert.Contains(t, out, header)
	}
	assert.NotContains(t, out, "LATENCY")

	var marked []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "*") {
			marked = append(marked, line)
		}
	}
	require.Len(t, marked, 1)
	assert.Contains(t, marked[0], "550.00")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderWriteError(t *testing.T) {
	err := New().Render(failingWriter{}, dashboard.Snapshot{})
	assert.Error(t, err)
}
