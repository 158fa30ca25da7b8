// =================================
// File: internal/ui/screen/returncalc.go
// =================================
package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/niveshak-app/niveshak/internal/format"
	"github.com/niveshak-app/niveshak/internal/projection"
	"github.com/niveshak-app/niveshak/internal/ui"
	"github.com/niveshak-app/niveshak/internal/ui/component"
	"github.com/niveshak-app/niveshak/internal/ui/router"
	"github.com/niveshak-app/niveshak/internal/ui/style"
)

// returnPeriods is the fixed duration choice of the Return Calculator.
// Each period's rate is the instrument's trailing cumulative return, so
// the projection applies it without compounding.
var returnPeriods = []struct {
	Key   string
	Label string
}{
	{Key: "6M", Label: "6 months"},
	{Key: "1Y", Label: "1 year"},
	{Key: "3Y", Label: "3 years"},
}

// ReturnCalcScreen answers "what would this amount have returned over the
// chosen period". Every keystroke recomputes through the projection
// controller; the displayed figures are never stale.
type ReturnCalcScreen struct {
	deps   Deps
	width  int
	height int
	keyMap ui.KeyMap

	proj        *projection.Controller
	amountInput textinput.Model
	period      int

	helpBar *component.HelpBar

	titleStyle    lipgloss.Style
	labelStyle    lipgloss.Style
	valueStyle    lipgloss.Style
	gainStyle     lipgloss.Style
	periodStyle   lipgloss.Style
	selectedStyle lipgloss.Style
}

// NewReturnCalcScreen creates the Return Calculator.
func NewReturnCalcScreen(deps Deps) *ReturnCalcScreen {
	palette := style.DefaultPalette()

	amount := textinput.New()
	amount.Placeholder = "amount"
	amount.CharLimit = 12
	amount.Width = 16
	amount.Focus()

	s := &ReturnCalcScreen{
		deps:        deps,
		keyMap:      ui.DefaultKeyMap(),
		proj:        projection.NewController(projection.ModeLumpsum, deps.Logger),
		amountInput: amount,
		period:      1, // 1 year
		helpBar:     component.NewHelpBar(),

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

		periodStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Padding(0, 1),

		selectedStyle: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary).
			Bold(true).
			Padding(0, 1),
	}

	s.proj.SetRatePercent(s.currentRate())
	return s
}

func (s *ReturnCalcScreen) currentRate() float64 {
	return s.deps.Cfg.ReturnRates[returnPeriods[s.period].Key]
}

// Init implements router.Screen.
func (s *ReturnCalcScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements router.Screen.
func (s *ReturnCalcScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, s.keyMap.Left):
			if s.period > 0 {
				s.period--
				s.proj.SetRatePercent(s.currentRate())
			}
			return s, nil
		case key.Matches(keyMsg, s.keyMap.Right):
			if s.period < len(returnPeriods)-1 {
				s.period++
				s.proj.SetRatePercent(s.currentRate())
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.amountInput, cmd = s.amountInput.Update(msg)

	// Commit on every keystroke; invalid text computes as zero while the
	// typed text stays on screen.
	if s.amountInput.Value() != s.proj.PrincipalText() {
		s.proj.SetPrincipalText(s.amountInput.Value())
	}
	return s, cmd
}

// View implements router.Screen.
func (s *ReturnCalcScreen) View() string {
	cur := s.deps.Cfg.Currency
	res := s.proj.Result()

	s.helpBar.SetKeyBindings([]key.Binding{
		s.keyMap.Left, s.keyMap.Right, s.keyMap.Back,
	}).SetWidth(s.width)

	return lipgloss.JoinVertical(lipgloss.Left,
		s.titleStyle.Render("Return Calculator"),
		s.labelStyle.Render("if you had invested")+" "+s.amountInput.View(),
		"",
		s.periodRow(),
		"",
		s.labelStyle.Render("period return ")+"  "+s.valueStyle.Render(format.Percent(s.currentRate())),
		s.labelStyle.Render("invested      ")+"  "+s.valueStyle.Render(format.Amount(res.Invested, cur)),
		s.labelStyle.Render("total value   ")+"  "+s.valueStyle.Render(format.Amount(res.Total, cur)),
		s.labelStyle.Render("your gains    ")+"  "+s.gainStyle.Render(format.SignedAmount(res.Returns, cur)),
		s.helpBar.View(),
	)
}

func (s *ReturnCalcScreen) periodRow() string {
	parts := make([]string, 0, len(returnPeriods))
	for i, p := range returnPeriods {
		if i == s.period {
			parts = append(parts, s.selectedStyle.Render(p.Label))
		} else {
			parts = append(parts, s.periodStyle.Render(p.Label))
		}
	}
	return strings.Join(parts, " ")
}

// SetSize implements router.Screen.
func (s *ReturnCalcScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}
