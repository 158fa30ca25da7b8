// =================================
// File: internal/ui/screen/sipcalc.go
// =================================
package screen

import (
	"strconv"

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

// sipField indexes the focusable inputs of the SIP calculator.
type sipField int

const (
	fieldMonthly sipField = iota
	fieldRate
	fieldYears
	sipFieldCount
)

// SIPCalcScreen projects a monthly contribution stream. The monthly amount
// can be typed or dragged with the slider; both write into the projection
// controller's numeric field, which is the single source of truth.
type SIPCalcScreen struct {
	deps   Deps
	width  int
	height int
	keyMap ui.KeyMap

	proj         *projection.Controller
	slider       *component.Slider
	monthlyInput textinput.Model
	rateInput    textinput.Model
	yearsInput   textinput.Model
	focus        sipField

	helpBar *component.HelpBar

	titleStyle   lipgloss.Style
	labelStyle   lipgloss.Style
	valueStyle   lipgloss.Style
	gainStyle    lipgloss.Style
	focusedStyle lipgloss.Style
}

// NewSIPCalcScreen creates the SIP Calculator with sensible defaults.
func NewSIPCalcScreen(deps Deps) *SIPCalcScreen {
	palette := style.DefaultPalette()
	cfg := deps.Cfg

	monthly := textinput.New()
	monthly.Placeholder = "monthly amount"
	monthly.CharLimit = 10
	monthly.Width = 14
	monthly.Focus()

	rate := textinput.New()
	rate.Placeholder = "expected return %"
	rate.CharLimit = 6
	rate.Width = 8

	years := textinput.New()
	years.Placeholder = "years"
	years.CharLimit = 3
	years.Width = 5

	s := &SIPCalcScreen{
		deps:         deps,
		keyMap:       ui.DefaultKeyMap(),
		proj:         projection.NewController(projection.ModePeriodicMonthly, deps.Logger),
		slider:       component.NewSlider(cfg.SIPMinMonthly, cfg.SIPMaxMonthly, cfg.SIPStepMonthly),
		monthlyInput: monthly,
		rateInput:    rate,
		yearsInput:   years,
		focus:        fieldMonthly,
		helpBar:      component.NewHelpBar(),

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

		focusedStyle: lipgloss.NewStyle().
			Foreground(palette.Primary),
	}

	// Defaults: a typical starting point users then adjust.
	s.proj.SetPrincipal(5000)
	s.proj.SetRatePercent(12)
	s.proj.SetYears(10)
	s.slider.SetValue(5000)
	s.monthlyInput.SetValue(s.proj.PrincipalText())
	s.rateInput.SetValue(s.proj.RateText())
	s.yearsInput.SetValue(s.proj.YearsText())

	return s
}

// Init implements router.Screen.
func (s *SIPCalcScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements router.Screen.
func (s *SIPCalcScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, s.keyMap.Tab):
			s.setFocus((s.focus + 1) % sipFieldCount)
			return s, textinput.Blink

		case key.Matches(keyMsg, s.keyMap.Left) && s.focus == fieldMonthly:
			s.commitSlider(s.slider.Decrease())
			return s, nil

		case key.Matches(keyMsg, s.keyMap.Right) && s.focus == fieldMonthly:
			s.commitSlider(s.slider.Increase())
			return s, nil
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldMonthly:
		s.monthlyInput, cmd = s.monthlyInput.Update(msg)
		if s.monthlyInput.Value() != s.proj.PrincipalText() {
			s.proj.SetPrincipalText(s.monthlyInput.Value())
			s.slider.SetValue(s.proj.Input().Principal)
		}
	case fieldRate:
		s.rateInput, cmd = s.rateInput.Update(msg)
		if s.rateInput.Value() != s.proj.RateText() {
			s.proj.SetRateText(s.rateInput.Value())
		}
	case fieldYears:
		s.yearsInput, cmd = s.yearsInput.Update(msg)
		if s.yearsInput.Value() != s.proj.YearsText() {
			s.proj.SetYearsText(s.yearsInput.Value())
		}
	}
	return s, cmd
}

// commitSlider writes a slider tick through the controller and mirrors the
// committed value back into the text view.
func (s *SIPCalcScreen) commitSlider(v float64) {
	s.proj.SetPrincipal(v)
	s.monthlyInput.SetValue(strconv.FormatFloat(v, 'f', -1, 64))
	s.monthlyInput.CursorEnd()
}

func (s *SIPCalcScreen) setFocus(f sipField) {
	s.focus = f
	s.monthlyInput.Blur()
	s.rateInput.Blur()
	s.yearsInput.Blur()
	switch f {
	case fieldMonthly:
		s.monthlyInput.Focus()
	case fieldRate:
		s.rateInput.Focus()
	case fieldYears:
		s.yearsInput.Focus()
	}
}

// View implements router.Screen.
func (s *SIPCalcScreen) View() string {
	cur := s.deps.Cfg.Currency
	res := s.proj.Result()

	s.helpBar.SetKeyBindings([]key.Binding{
		s.keyMap.Tab, s.keyMap.Left, s.keyMap.Right, s.keyMap.Back,
	}).SetWidth(s.width)

	sliderLine := s.slider.SetWidth(s.width / 2).View()
	if s.focus == fieldMonthly {
		sliderLine = s.focusedStyle.Render("› ") + sliderLine
	} else {
		sliderLine = "  " + sliderLine
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.titleStyle.Render("SIP Calculator"),
		s.labelStyle.Render("monthly investment")+" "+s.monthlyInput.View(),
		sliderLine,
		s.labelStyle.Render("expected return %")+"  "+s.rateInput.View(),
		s.labelStyle.Render("time period (yrs)")+"  "+s.yearsInput.View(),
		"",
		s.labelStyle.Render("invested amount")+"  "+s.valueStyle.Render(format.Amount(res.Invested, cur)),
		s.labelStyle.Render("expected value ")+"  "+s.valueStyle.Render(format.Amount(res.Total, cur)),
		s.labelStyle.Render("wealth gained  ")+"  "+s.gainStyle.Render(format.SignedAmount(res.Returns, cur)),
		s.helpBar.View(),
	)
}

// SetSize implements router.Screen.
func (s *SIPCalcScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}
