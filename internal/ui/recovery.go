package ui

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// ErrTooManyRestarts is returned once the UI has crashed more often than
// allowed.
var ErrTooManyRestarts = errors.New("UI crashed too many times")

// ProgramFactory builds a fresh model and its program options for each run.
type ProgramFactory func() (tea.Model, []tea.ProgramOption)

// RecoveryHandler runs the terminal program and rebuilds it after a panic or
// error, waiting an exponentially growing delay between attempts.
type RecoveryHandler struct {
	logger       *zap.Logger
	restartDelay time.Duration
	maxRestarts  int
	createUI     ProgramFactory

	mu           sync.Mutex
	restartCount int
	program      *tea.Program
	stopped      bool
}

// NewRecoveryHandler creates a new recovery handler
func NewRecoveryHandler(logger *zap.Logger, maxRestarts int, restartDelay time.Duration, createUI ProgramFactory) *RecoveryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecoveryHandler{
		logger:       logger.Named("recovery"),
		restartDelay: restartDelay,
		maxRestarts:  maxRestarts,
		createUI:     createUI,
	}
}

// RunWithRecovery runs the UI until it exits normally, ctx is cancelled or
// the restart budget is spent.
func (rh *RecoveryHandler) RunWithRecovery(ctx context.Context) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = rh.restartDelay
	policy.MaxInterval = rh.restartDelay * 10
	policy.Reset()

	for {
		err := rh.runUI()
		if err == nil {
			return nil
		}

		rh.mu.Lock()
		if rh.stopped {
			rh.mu.Unlock()
			return nil
		}
		rh.restartCount++
		count := rh.restartCount
		rh.mu.Unlock()

		if count > rh.maxRestarts {
			return fmt.Errorf("%w (%d): %w", ErrTooManyRestarts, rh.maxRestarts, err)
		}

		delay := policy.NextBackOff()
		rh.logger.Error("UI crashed, will restart",
			zap.Error(err),
			zap.Int("restart_count", count),
			zap.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// runUI runs the UI with panic recovery
func (rh *RecoveryHandler) runUI() (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			err = fmt.Errorf("UI panic: %v", r)
			rh.logger.Error("UI panic recovered",
				zap.Any("panic", r),
				zap.String("stack", string(stack)))
		}
	}()

	model, opts := rh.createUI()
	program := tea.NewProgram(model, opts...)

	rh.mu.Lock()
	if rh.stopped {
		rh.mu.Unlock()
		return nil
	}
	rh.program = program
	rh.mu.Unlock()

	_, runErr := program.Run()

	rh.mu.Lock()
	rh.program = nil
	rh.mu.Unlock()

	if runErr != nil {
		return fmt.Errorf("UI error: %w", runErr)
	}
	return nil
}

// Stop quits the running program and prevents further restarts.
func (rh *RecoveryHandler) Stop() {
	rh.mu.Lock()
	defer rh.mu.Unlock()

	rh.stopped = true
	if rh.program != nil {
		rh.program.Quit()
	}
}

// GetRestartCount returns the number of restarts
func (rh *RecoveryHandler) GetRestartCount() int {
	rh.mu.Lock()
	defer rh.mu.Unlock()
	return rh.restartCount
}
