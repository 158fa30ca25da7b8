// =================================
// File: cmd/tui/main.go
// =================================
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/niveshak-app/niveshak/internal/config"
	"github.com/niveshak-app/niveshak/internal/logger"
	"github.com/niveshak-app/niveshak/internal/market"
	"github.com/niveshak-app/niveshak/internal/ui"
	"github.com/niveshak-app/niveshak/internal/ui/router"
	"github.com/niveshak-app/niveshak/internal/ui/screen"
)

// AppModel represents the main TUI application model
type AppModel struct {
	router *router.Router
	deps   screen.Deps
	width  int
	height int
}

// NewAppModel creates a new application model starting at the login screen
func NewAppModel(deps screen.Deps) *AppModel {
	login := screen.NewLoginScreen(deps)
	return &AppModel{
		router: router.New(login),
		deps:   deps,
	}
}

// Init initializes the application
func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Init(),
		ui.ListenBus(), // Start listening to the event bus
		tea.EnterAltScreen,
	)
}

// Update handles application-level updates
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.router.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// q quits from the top of the stack, otherwise types as text
			if !m.router.CanGoBack() && m.isDashboard() {
				return m, tea.Quit
			}
			cmds = append(cmds, m.forward(msg))
		default:
			cmds = append(cmds, m.forward(msg))
		}

	case ui.RouterMsg:
		if cmd := m.handleNavigation(msg.To); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case ui.OpenSchemeMsg:
		cmds = append(cmds, m.router.Push(
			screen.NewPortfolioScreen(m.deps, msg.SchemeID, msg.SchemeName)))

	default:
		cmds = append(cmds, m.forward(msg))
	}

	// Continue listening for events
	cmds = append(cmds, ui.ListenBus())

	return m, tea.Batch(cmds...)
}

func (m *AppModel) forward(msg tea.Msg) tea.Cmd {
	updatedRouter, cmd := m.router.Update(msg)
	m.router = updatedRouter.(*router.Router)
	return cmd
}

func (m *AppModel) isDashboard() bool {
	_, ok := m.router.Current().(*screen.DashboardScreen)
	return ok
}

// handleNavigation handles navigation to different screens
func (m *AppModel) handleNavigation(route ui.Route) tea.Cmd {
	switch route {
	case ui.RouteLogin:
		return m.router.Replace(screen.NewLoginScreen(m.deps))
	case ui.RouteDashboard:
		// Login is done; the dashboard becomes the new stack root.
		return m.router.Replace(screen.NewDashboardScreen(m.deps))
	case ui.RouteReturnCalc:
		return m.router.Push(screen.NewReturnCalcScreen(m.deps))
	case ui.RouteSIPCalc:
		return m.router.Push(screen.NewSIPCalcScreen(m.deps))
	default:
		return nil
	}
}

// View renders the application
func (m *AppModel) View() string {
	return m.router.View()
}

func main() {
	configPath := flag.String("config", "config.json", "path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(&logger.Config{
		LogFile:     cfg.LogFile,
		MaxSize:     50,
		MaxAge:      7,
		MaxBackups:  3,
		Compress:    true,
		Development: cfg.DebugLogging,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := screen.Deps{
		Cfg:    cfg,
		Client: market.NewClient(cfg, zl.WithComponent("market")),
		Logger: zl.WithComponent("ui"),
	}

	p := tea.NewProgram(NewAppModel(deps), tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	zl.Info("Starting Niveshak", zap.String("api", cfg.APIBaseURL))
	if _, err := p.Run(); err != nil {
		zl.Fatal("Application crashed", zap.Error(err))
	}
}
