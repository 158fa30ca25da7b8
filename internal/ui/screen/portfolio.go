// =================================
// File: internal/ui/screen/portfolio.go
// =================================
package screen

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/niveshak-app/niveshak/internal/series"
	"github.com/niveshak-app/niveshak/internal/ui"
	"github.com/niveshak-app/niveshak/internal/ui/component"
	"github.com/niveshak-app/niveshak/internal/ui/router"
	"github.com/niveshak-app/niveshak/internal/ui/style"
)

// PortfolioScreen shows a scheme's NAV history chart. The chart window
// controller owns the interval and the raw series; this screen is the
// rendering surface it publishes to (via the UI bus).
type PortfolioScreen struct {
	deps       Deps
	schemeID   string
	schemeName string
	width      int
	height     int
	keyMap     ui.KeyMap

	chartCtl    *series.Controller
	chart       *component.LineChart
	intervalBar *component.IntervalBar
	helpBar     *component.HelpBar

	loading bool
	errText string

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	errorStyle lipgloss.Style
}

// NewPortfolioScreen creates the chart screen for one scheme.
func NewPortfolioScreen(deps Deps, schemeID, schemeName string) *PortfolioScreen {
	palette := style.DefaultPalette()

	s := &PortfolioScreen{
		deps:       deps,
		schemeID:   schemeID,
		schemeName: schemeName,
		keyMap:     ui.DefaultKeyMap(),
		loading:    true,

		chart:       component.NewLineChart(60, 10),
		intervalBar: component.NewIntervalBar(),
		helpBar:     component.NewHelpBar(),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0),

		labelStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error),
	}

	s.chartCtl = series.NewController(ui.PublishSeries, deps.Logger)
	s.intervalBar.Select(s.chartCtl.Interval())
	return s
}

// Init implements router.Screen.
func (s *PortfolioScreen) Init() tea.Cmd {
	return s.fetchHistory()
}

func (s *PortfolioScreen) fetchHistory() tea.Cmd {
	client := s.deps.Client
	schemeID := s.schemeID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		points, err := client.NavHistory(ctx, schemeID)
		if err != nil {
			return ui.ErrorMsg{Error: err, Title: "could not load NAV history"}
		}
		return ui.NavHistoryMsg{SchemeID: schemeID, Points: points}
	}
}

// Update implements router.Screen.
func (s *PortfolioScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.NavHistoryMsg:
		if msg.SchemeID != s.schemeID {
			return s, nil
		}
		s.loading = false
		s.errText = ""
		s.chartCtl.SetSeries(msg.Points)
		return s, nil

	case ui.SeriesMsg:
		// The push from the chart controller lands here.
		s.chart.SetPoints(msg.Points)
		return s, nil

	case ui.ErrorMsg:
		s.loading = false
		s.errText = msg.Title
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Left):
			s.switchInterval(s.intervalBar.Prev())
		case key.Matches(msg, s.keyMap.Right):
			s.switchInterval(s.intervalBar.Next())
		case key.Matches(msg, s.keyMap.Refresh):
			s.loading = true
			return s, s.fetchHistory()
		}
	}

	return s, nil
}

func (s *PortfolioScreen) switchInterval(iv series.Interval) {
	if err := s.chartCtl.SetInterval(iv); err != nil {
		// Unknown symbol: keep the controller's selection authoritative.
		s.intervalBar.Select(s.chartCtl.Interval())
	}
}

// View implements router.Screen.
func (s *PortfolioScreen) View() string {
	title := s.titleStyle.Render(s.schemeName)

	if s.loading {
		return lipgloss.JoinVertical(lipgloss.Left, title, s.labelStyle.Render("loading…"))
	}
	if s.errText != "" {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			s.errorStyle.Render(s.errText),
			s.labelStyle.Render("ctrl+r to retry"))
	}

	s.helpBar.SetKeyBindings([]key.Binding{
		s.keyMap.Left, s.keyMap.Right, s.keyMap.Refresh, s.keyMap.Back,
	}).SetWidth(s.width)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		s.chart.View(),
		"",
		s.intervalBar.View(),
		s.helpBar.View(),
	)
}

// SetSize implements router.Screen.
func (s *PortfolioScreen) SetSize(width, height int) {
	s.width = width
	s.height = height

	chartWidth := width - 16
	chartHeight := height - 10
	s.chart.SetSize(chartWidth, chartHeight)
}
