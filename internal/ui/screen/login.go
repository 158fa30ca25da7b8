// =================================
// File: internal/ui/screen/login.go
// =================================
package screen

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/niveshak-app/niveshak/internal/ui"
	"github.com/niveshak-app/niveshak/internal/ui/component"
	"github.com/niveshak-app/niveshak/internal/ui/router"
	"github.com/niveshak-app/niveshak/internal/ui/style"
)

// LoginStep represents the current step of the login flow
type LoginStep int

const (
	StepPhone LoginStep = iota
	StepOTP
)

// LoginScreen collects the phone number, requests an OTP and verifies it.
// Verification itself is the backend's job; this screen only calls the
// boundary and reacts to the result.
type LoginScreen struct {
	deps   Deps
	width  int
	height int
	keyMap ui.KeyMap

	step       LoginStep
	phoneInput textinput.Model
	otpInput   textinput.Model
	busy       bool
	errText    string

	helpBar *component.HelpBar

	titleStyle lipgloss.Style
	errorStyle lipgloss.Style
	hintStyle  lipgloss.Style
}

// NewLoginScreen creates the login screen.
func NewLoginScreen(deps Deps) *LoginScreen {
	palette := style.DefaultPalette()

	phone := textinput.New()
	phone.Placeholder = "phone number"
	phone.CharLimit = 15
	phone.Width = 24
	phone.Focus()

	otp := textinput.New()
	otp.Placeholder = "6-digit OTP"
	otp.CharLimit = 6
	otp.Width = 24

	return &LoginScreen{
		deps:       deps,
		keyMap:     ui.DefaultKeyMap(),
		step:       StepPhone,
		phoneInput: phone,
		otpInput:   otp,
		helpBar:    component.NewHelpBar(),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error).
			MarginTop(1),

		hintStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),
	}
}

// Init implements router.Screen.
func (s *LoginScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements router.Screen.
func (s *LoginScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, s.keyMap.Enter) && !s.busy {
			return s, s.submit()
		}

	case ui.OTPSentMsg:
		s.busy = false
		if msg.Err != nil {
			s.errText = "could not send OTP, check the number and try again"
			s.deps.Logger.Warn("OTP request failed", zap.Error(msg.Err))
			return s, nil
		}
		s.step = StepOTP
		s.errText = ""
		s.phoneInput.Blur()
		s.otpInput.Focus()
		return s, textinput.Blink

	case ui.LoginResultMsg:
		s.busy = false
		if msg.Err != nil {
			s.errText = "login failed, verify the OTP and try again"
			s.deps.Logger.Warn("Login failed", zap.Error(msg.Err))
			s.otpInput.SetValue("")
			return s, nil
		}
		return s, func() tea.Msg {
			return ui.RouterMsg{To: ui.RouteDashboard}
		}
	}

	var cmd tea.Cmd
	if s.step == StepPhone {
		s.phoneInput, cmd = s.phoneInput.Update(msg)
	} else {
		s.otpInput, cmd = s.otpInput.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) submit() tea.Cmd {
	client := s.deps.Client
	timeout := 10 * time.Second

	if s.step == StepPhone {
		phone := s.phoneInput.Value()
		if phone == "" {
			s.errText = "enter your phone number"
			return nil
		}
		s.busy = true
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			return ui.OTPSentMsg{Err: client.RequestOTP(ctx, phone)}
		}
	}

	phone, otp := s.phoneInput.Value(), s.otpInput.Value()
	if otp == "" {
		s.errText = "enter the OTP"
		return nil
	}
	s.busy = true
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		account, err := client.Login(ctx, phone, otp)
		return ui.LoginResultMsg{Account: account, Err: err}
	}
}

// View implements router.Screen.
func (s *LoginScreen) View() string {
	var body string
	switch s.step {
	case StepPhone:
		body = s.phoneInput.View() + "\n" + s.hintStyle.Render("we will send a one-time password")
	case StepOTP:
		body = s.otpInput.View() + "\n" + s.hintStyle.Render("OTP sent to "+s.phoneInput.Value())
	}

	if s.busy {
		body += "\n" + s.hintStyle.Render("…")
	}
	if s.errText != "" {
		body += "\n" + s.errorStyle.Render(s.errText)
	}

	s.helpBar.SetKeyBindings([]key.Binding{s.keyMap.Enter, s.keyMap.Quit}).SetWidth(s.width)

	return lipgloss.JoinVertical(lipgloss.Left,
		s.titleStyle.Render("Niveshak — sign in"),
		body,
		s.helpBar.View(),
	)
}

// SetSize implements router.Screen.
func (s *LoginScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}
