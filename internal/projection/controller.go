// =================================
// File: internal/projection/controller.go
// =================================
package projection

import (
	"strconv"

	"go.uber.org/zap"
)

// Mode selects which growth computation the controller runs.
type Mode int

const (
	// ModeLumpsum is the Return Calculator: a one-time amount against a
	// trailing cumulative period return.
	ModeLumpsum Mode = iota
	// ModePeriodicMonthly is the SIP Calculator: a monthly contribution
	// stream over a number of years.
	ModePeriodicMonthly
)

// Input is the full set of user-adjustable values. The numeric fields are
// the single source of truth; slider and text field both write here.
type Input struct {
	Principal   float64
	RatePercent float64
	Years       float64
	Mode        Mode
}

// Controller owns the calculator input state and keeps a Result that is
// always consistent with the last committed input. Every setter recomputes
// synchronously, so there is no window where the three display values
// disagree with each other.
type Controller struct {
	input  Input
	result Result

	// Raw text as typed, preserved for display even when it does not
	// parse (the computation sees 0 in that case).
	principalText string
	rateText      string
	yearsText     string

	logger *zap.Logger
}

// NewController creates a controller for the given mode.
func NewController(mode Mode, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		input:  Input{Mode: mode},
		logger: logger,
	}
	c.recompute()
	return c
}

// SetPrincipalText commits a typed amount. Non-numeric text computes as 0
// but is kept verbatim for display.
func (c *Controller) SetPrincipalText(s string) {
	c.principalText = s
	c.input.Principal = ParseAmount(s)
	c.recompute()
}

// SetPrincipal commits a slider-driven amount. The text view follows the
// numeric field so both stay in sync.
func (c *Controller) SetPrincipal(v float64) {
	c.input.Principal = v
	c.principalText = strconv.FormatFloat(v, 'f', -1, 64)
	c.recompute()
}

// SetRatePercent commits an expected/trailing return percentage.
func (c *Controller) SetRatePercent(v float64) {
	c.input.RatePercent = v
	c.rateText = strconv.FormatFloat(v, 'f', -1, 64)
	c.recompute()
}

// SetRateText commits a typed return percentage.
func (c *Controller) SetRateText(s string) {
	c.rateText = s
	c.input.RatePercent = ParseAmount(s)
	c.recompute()
}

// SetYears commits the investment duration in years.
func (c *Controller) SetYears(v float64) {
	c.input.Years = v
	c.yearsText = strconv.FormatFloat(v, 'f', -1, 64)
	c.recompute()
}

// SetYearsText commits a typed duration.
func (c *Controller) SetYearsText(s string) {
	c.yearsText = s
	c.input.Years = ParseAmount(s)
	c.recompute()
}

// Input returns the current committed input.
func (c *Controller) Input() Input { return c.input }

// Result returns the projection for the current input.
func (c *Controller) Result() Result { return c.result }

// PrincipalText returns the amount as typed.
func (c *Controller) PrincipalText() string { return c.principalText }

// RateText returns the rate as typed.
func (c *Controller) RateText() string { return c.rateText }

// YearsText returns the duration as typed.
func (c *Controller) YearsText() string { return c.yearsText }

func (c *Controller) recompute() {
	switch c.input.Mode {
	case ModePeriodicMonthly:
		c.result = PeriodicMonthly(c.input.Principal, c.input.RatePercent, c.input.Years)
	default:
		total := Lumpsum(c.input.Principal, c.input.RatePercent)
		c.result = Result{
			Invested: c.input.Principal,
			Total:    total,
			Returns:  total - c.input.Principal,
		}
	}

	c.logger.Debug("Projection recomputed",
		zap.Float64("principal", c.input.Principal),
		zap.Float64("rate_percent", c.input.RatePercent),
		zap.Float64("years", c.input.Years),
		zap.Float64("total", c.result.Total))
}
