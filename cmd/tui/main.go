package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rovshanmuradov/latency-wars/internal/config"
	"github.com/rovshanmuradov/latency-wars/internal/dashboard"
	"github.com/rovshanmuradov/latency-wars/internal/logger"
	"github.com/rovshanmuradov/latency-wars/internal/ui"
	"github.com/rovshanmuradov/latency-wars/internal/ui/plain"
	"github.com/rovshanmuradov/latency-wars/internal/ui/router"
	"github.com/rovshanmuradov/latency-wars/internal/ui/screen"
)

const logFlushInterval = time.Second

// AppModel represents the main TUI application model
type AppModel struct {
	router *router.Router
	title  string
	width  int
	height int
}

// NewAppModel creates a new application model around board
func NewAppModel(board dashboard.Board, title string, log *zap.Logger) *AppModel {
	return &AppModel{
		router: router.New(screen.NewDashboardScreen(board, log)),
		title:  title,
	}
}

// Init initializes the application
func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Init(),
		tea.SetWindowTitle(m.title),
	)
}

// Update handles application-level updates
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case ui.RouterMsg:
		return m, m.handleNavigation(msg.To)
	}

	_, cmd := m.router.Update(msg)
	return m, cmd
}

// handleNavigation handles navigation to different screens
func (m *AppModel) handleNavigation(route ui.Route) tea.Cmd {
	switch route {
	case ui.RouteDashboard:
		return m.router.Clear()
	case ui.RouteHelp:
		if _, ok := m.router.Current().(*screen.HelpScreen); ok {
			return nil
		}
		return m.router.Push(screen.NewHelpScreen())
	default:
		// Unknown route, stay on current screen
		return nil
	}
}

// View renders the application
func (m *AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	return m.router.View()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "latency-wars: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := pflag.NewFlagSet("latency-wars", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", config.DefaultConfigPath, "Path to config file")
	plainMode := flags.Bool("plain", false, "Print the evaluated dashboard and exit")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	path := *configPath
	if !flags.Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *plainMode {
		return runPlain(cfg, stdout, stderr)
	}
	return runTUI(cfg)
}

func runPlain(cfg *config.Config, stdout, stderr io.Writer) error {
	appLogger := logger.CreatePrettyLogger(cfg.DebugLogging, stderr).
		With(zap.String("session_id", uuid.New().String()))
	defer func() {
		_ = appLogger.Sync()
	}()

	board := dashboard.New(appLogger)
	board.RunEvaluation()

	return plain.New().Render(stdout, board.Snapshot())
}

func runTUI(cfg *config.Config) error {
	sink, err := logger.NewFileSink(cfg.LogFile, logFlushInterval)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() {
		_ = sink.Close()
	}()

	appLogger, err := logger.CreateTUILogger(cfg.DebugLogging, sink)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	appLogger = appLogger.With(zap.String("session_id", uuid.New().String()))
	defer func() {
		_ = appLogger.Sync()
	}()

	appLogger.Info("Starting Latency Wars dashboard", zap.String("log_file", cfg.LogFile))

	// The board outlives UI restarts so a crash does not reset the results.
	board := dashboard.New(appLogger)

	createUI := func() (tea.Model, []tea.ProgramOption) {
		opts := []tea.ProgramOption{tea.WithoutSignalHandler()}
		// Click coordinates only line up with the layout on the alternate screen.
		if cfg.AltScreen {
			opts = append(opts, tea.WithAltScreen(), tea.WithMouseCellMotion())
		}
		return NewAppModel(board, cfg.Title, appLogger), opts
	}
	handler := ui.NewRecoveryHandler(appLogger, cfg.UI.MaxRestarts, cfg.UI.RestartDelay, createUI)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(rootCtx)
	uiDone := make(chan struct{})

	g.Go(func() error {
		defer close(uiDone)
		return handler.RunWithRecovery(ctx)
	})

	g.Go(func() error {
		select {
		case <-ctx.Done():
			appLogger.Info("Shutting down dashboard")
			handler.Stop()
		case <-uiDone:
		}
		return nil
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Dashboard stopped with error", zap.Error(err))
		return err
	}

	writes, flushes := sink.GetStats()
	appLogger.Info("Dashboard closed",
		zap.Uint64("log_writes", writes),
		zap.Uint64("log_flushes", flushes))
	return nil
}
