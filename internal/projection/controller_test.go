// =================================
// File: internal/projection/controller_test.go
// =================================
package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestControllerRecomputesOnEveryChange(t *testing.T) {
	c := NewController(ModePeriodicMonthly, zap.NewNop())

	c.SetPrincipal(10000)
	c.SetRatePercent(12)
	c.SetYears(10)

	res := c.Result()
	require.Equal(t, 1200000.0, res.Invested)
	assert.InDelta(t, 2323390.76, res.Total, 1.0)

	// Changing one field refreshes the whole result as a unit.
	c.SetYears(5)
	res = c.Result()
	assert.Equal(t, 600000.0, res.Invested)
	assert.Equal(t, res.Total-res.Invested, res.Returns)
}

func TestControllerInvalidTextFailsSoft(t *testing.T) {
	c := NewController(ModePeriodicMonthly, zap.NewNop())
	c.SetRatePercent(12)
	c.SetYears(10)

	c.SetPrincipalText("abc")

	// Computation sees zero, the raw text survives for display.
	assert.Equal(t, Result{}, c.Result())
	assert.Equal(t, "abc", c.PrincipalText())
	assert.Equal(t, 0.0, c.Input().Principal)
}

func TestControllerSliderAndTextShareState(t *testing.T) {
	c := NewController(ModePeriodicMonthly, zap.NewNop())
	c.SetRatePercent(10)
	c.SetYears(1)

	// Slider writes the numeric field; the text view follows.
	c.SetPrincipal(7500)
	assert.Equal(t, "7500", c.PrincipalText())
	assert.Equal(t, 7500.0, c.Input().Principal)

	// Text entry writes the same field back.
	c.SetPrincipalText("9000")
	assert.Equal(t, 9000.0, c.Input().Principal)
}

func TestControllerLumpsumMode(t *testing.T) {
	c := NewController(ModeLumpsum, zap.NewNop())
	c.SetPrincipalText("1000")
	c.SetRatePercent(8.5)

	res := c.Result()
	assert.Equal(t, 1000.0, res.Invested)
	assert.InDelta(t, 1085.0, res.Total, 1e-9)
	assert.InDelta(t, 85.0, res.Returns, 1e-9)
}

func TestControllerResultNeverPartial(t *testing.T) {
	c := NewController(ModePeriodicMonthly, zap.NewNop())

	for _, amount := range []string{"1", "10", "100", "1000", "1000x", "10000"} {
		c.SetPrincipalText(amount)
		c.SetRatePercent(12)
		c.SetYears(10)
		res := c.Result()
		assert.Equal(t, res.Total-res.Invested, res.Returns)
	}
}
