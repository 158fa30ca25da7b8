// =================================
// File: internal/ui/msg.go
// =================================
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/niveshak-app/niveshak/internal/market"
	"github.com/niveshak-app/niveshak/internal/series"
)

// Tea message types for UI communication

// RouterMsg represents navigation between screens
type RouterMsg struct {
	To Route
}

// SeriesMsg carries a freshly windowed chart series. The chart controller
// pushes these; the portfolio screen renders them.
type SeriesMsg struct {
	Points []series.Point
}

// OverviewMsg carries the dashboard data after a fetch
type OverviewMsg struct {
	Overview *market.Overview
}

// NavHistoryMsg carries a scheme's raw NAV series after a fetch
type NavHistoryMsg struct {
	SchemeID string
	Points   []series.RawPoint
}

// OpenSchemeMsg asks the app to open the portfolio detail of a scheme
type OpenSchemeMsg struct {
	SchemeID   string
	SchemeName string
}

// OTPSentMsg reports the result of an OTP request
type OTPSentMsg struct {
	Err error
}

// LoginResultMsg reports the result of an OTP verification
type LoginResultMsg struct {
	Account *market.Account
	Err     error
}

// ErrorMsg represents error conditions
type ErrorMsg struct {
	Error error
	Title string
}

// Route represents different screens in the application
type Route int

const (
	RouteLogin Route = iota
	RouteDashboard
	RoutePortfolio
	RouteReturnCalc
	RouteSIPCalc
)

// Bus is the global event bus for UI communication
var Bus = make(chan tea.Msg, 256)

// PublishSeries pushes a windowed series to the UI bus
func PublishSeries(points []series.Point) {
	select {
	case Bus <- SeriesMsg{Points: points}:
	default:
		// Bus is full, drop the update
	}
}

// PublishError pushes an error to the UI bus
func PublishError(err error, title string) {
	select {
	case Bus <- ErrorMsg{Error: err, Title: title}:
	default:
		// Bus is full, drop the error
	}
}

// ListenBus returns a tea.Cmd that listens to the event bus
func ListenBus() tea.Cmd {
	return func() tea.Msg {
		return <-Bus
	}
}
