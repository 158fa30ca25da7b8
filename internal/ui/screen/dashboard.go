// =================================
// File: internal/ui/screen/dashboard.go
// =================================
package screen

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/niveshak-app/niveshak/internal/format"
	"github.com/niveshak-app/niveshak/internal/market"
	"github.com/niveshak-app/niveshak/internal/ui"
	"github.com/niveshak-app/niveshak/internal/ui/component"
	"github.com/niveshak-app/niveshak/internal/ui/router"
	"github.com/niveshak-app/niveshak/internal/ui/style"
)

// DashboardScreen shows the account summary and the holdings list, and is
// the hub for the portfolio chart and both calculators.
type DashboardScreen struct {
	deps   Deps
	width  int
	height int
	keyMap ui.KeyMap

	overview *market.Overview
	cursor   int
	loading  bool
	errText  string

	helpBar *component.HelpBar

	titleStyle    lipgloss.Style
	labelStyle    lipgloss.Style
	valueStyle    lipgloss.Style
	gainStyle     lipgloss.Style
	lossStyle     lipgloss.Style
	rowStyle      lipgloss.Style
	selectedStyle lipgloss.Style
	errorStyle    lipgloss.Style
	boxStyle      lipgloss.Style
}

// NewDashboardScreen creates the dashboard.
func NewDashboardScreen(deps Deps) *DashboardScreen {
	palette := style.DefaultPalette()

	return &DashboardScreen{
		deps:    deps,
		keyMap:  ui.DefaultKeyMap(),
		loading: true,
		helpBar: component.NewHelpBar(),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0),

		labelStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		valueStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true),

		gainStyle: lipgloss.NewStyle().
			Foreground(palette.Gain).
			Bold(true),

		lossStyle: lipgloss.NewStyle().
			Foreground(palette.Loss).
			Bold(true),

		rowStyle: lipgloss.NewStyle().
			Foreground(palette.TextSecondary),

		selectedStyle: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error),

		boxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted).
			Padding(0, 2).
			Margin(0, 0, 1, 0),
	}
}

// Init implements router.Screen.
func (s *DashboardScreen) Init() tea.Cmd {
	return s.fetchOverview()
}

func (s *DashboardScreen) fetchOverview() tea.Cmd {
	client := s.deps.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		ov, err := client.FetchOverview(ctx)
		if err != nil {
			return ui.ErrorMsg{Error: err, Title: "could not load your account"}
		}
		return ui.OverviewMsg{Overview: ov}
	}
}

// Update implements router.Screen.
func (s *DashboardScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.OverviewMsg:
		s.overview = msg.Overview
		s.loading = false
		s.errText = ""
		if s.cursor >= len(msg.Overview.Holdings) {
			s.cursor = 0
		}
		return s, nil

	case ui.ErrorMsg:
		s.loading = false
		s.errText = msg.Title
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, s.keyMap.Down):
			if s.overview != nil && s.cursor < len(s.overview.Holdings)-1 {
				s.cursor++
			}
		case key.Matches(msg, s.keyMap.Enter), key.Matches(msg, s.keyMap.Portfolio):
			if s.overview != nil && len(s.overview.Holdings) > 0 {
				h := s.overview.Holdings[s.cursor]
				return s, func() tea.Msg {
					return ui.OpenSchemeMsg{SchemeID: h.SchemeID, SchemeName: h.SchemeName}
				}
			}
		case key.Matches(msg, s.keyMap.ReturnCalc):
			return s, func() tea.Msg { return ui.RouterMsg{To: ui.RouteReturnCalc} }
		case key.Matches(msg, s.keyMap.SIPCalc):
			return s, func() tea.Msg { return ui.RouterMsg{To: ui.RouteSIPCalc} }
		case key.Matches(msg, s.keyMap.Refresh):
			s.loading = true
			return s, s.fetchOverview()
		}
	}

	return s, nil
}

// View implements router.Screen.
func (s *DashboardScreen) View() string {
	title := s.titleStyle.Render("Niveshak — your investments")

	if s.loading {
		return lipgloss.JoinVertical(lipgloss.Left, title, s.labelStyle.Render("loading…"))
	}
	if s.errText != "" {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			s.errorStyle.Render(s.errText),
			s.labelStyle.Render("ctrl+r to retry"))
	}
	if s.overview == nil {
		return title
	}

	s.helpBar.SetKeyBindings([]key.Binding{
		s.keyMap.Enter, s.keyMap.ReturnCalc, s.keyMap.SIPCalc, s.keyMap.Refresh, s.keyMap.Quit,
	}).SetWidth(s.width)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		s.summaryBox(),
		s.holdingsList(),
		s.helpBar.View(),
	)
}

func (s *DashboardScreen) summaryBox() string {
	sum := s.overview.Summary
	cur := sum.Currency
	if cur == "" {
		cur = s.deps.Cfg.Currency
	}

	returnsStyle := s.gainStyle
	if sum.Returns < 0 {
		returnsStyle = s.lossStyle
	}

	lines := lipgloss.JoinVertical(lipgloss.Left,
		s.labelStyle.Render("invested")+"  "+s.valueStyle.Render(format.Amount(sum.Invested, cur)),
		s.labelStyle.Render("current ")+"  "+s.valueStyle.Render(format.Amount(sum.Current, cur)),
		s.labelStyle.Render("returns ")+"  "+returnsStyle.Render(format.SignedAmount(sum.Returns, cur)),
	)
	return s.boxStyle.Render(lines)
}

func (s *DashboardScreen) holdingsList() string {
	if len(s.overview.Holdings) == 0 {
		return s.labelStyle.Render("no holdings yet")
	}

	cur := s.deps.Cfg.Currency
	rows := make([]string, 0, len(s.overview.Holdings))
	for i, h := range s.overview.Holdings {
		row := fmt.Sprintf(" %-32s %10.3f units  %s ", h.SchemeName, h.Units, format.Amount(h.Value, cur))
		if i == s.cursor {
			rows = append(rows, s.selectedStyle.Render(row))
		} else {
			rows = append(rows, s.rowStyle.Render(row))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// SetSize implements router.Screen.
func (s *DashboardScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}
