// =================================
// File: internal/projection/projection_test.go
// =================================
package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLumpsum(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		want      float64
	}{
		{name: "Documented scenario", principal: 1000, rate: 8.5, want: 1085},
		{name: "Zero rate returns principal", principal: 2500, rate: 0, want: 2500},
		{name: "Negative rate loses money", principal: 1000, rate: -10, want: 900},
		{name: "NaN principal fails soft", principal: math.NaN(), rate: 8.5, want: 0},
		{name: "Infinite rate fails soft", principal: 1000, rate: math.Inf(1), want: 0},
		{name: "Zero principal", principal: 0, rate: 12, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Lumpsum(tt.principal, tt.rate), 1e-9)
		})
	}
}

func TestPeriodicMonthlyDocumentedScenario(t *testing.T) {
	// 10000/month at 12% over 10 years: r = 0.01, n = 120.
	res := PeriodicMonthly(10000, 12, 10)

	require.Equal(t, 1200000.0, res.Invested)
	assert.InDelta(t, 2323390.76, res.Total, 1.0)
	assert.Equal(t, res.Total-res.Invested, res.Returns)
}

func TestPeriodicMonthlyZeroRate(t *testing.T) {
	// No growth: total must equal invested exactly, with no division by the
	// zero monthly rate anywhere.
	res := PeriodicMonthly(5000, 0, 7)

	require.Equal(t, 5000.0*84, res.Invested)
	assert.Equal(t, res.Invested, res.Total)
	assert.Equal(t, 0.0, res.Returns)
}

func TestPeriodicMonthlyReturnsIdentity(t *testing.T) {
	inputs := []struct{ monthly, rate, years float64 }{
		{10000, 12, 10},
		{500, 0.5, 1},
		{250000, 25, 30},
		{1, 100, 40},
	}

	for _, in := range inputs {
		res := PeriodicMonthly(in.monthly, in.rate, in.years)
		// Definitional invariant, bit-for-bit.
		assert.Equal(t, res.Total-res.Invested, res.Returns)
	}
}

func TestPeriodicMonthlyDegenerateInputs(t *testing.T) {
	tests := []struct {
		name    string
		monthly float64
		rate    float64
		years   float64
	}{
		{name: "Zero years", monthly: 1000, rate: 12, years: 0},
		{name: "Negative years", monthly: 1000, rate: 12, years: -3},
		{name: "NaN contribution", monthly: math.NaN(), rate: 12, years: 10},
		{name: "Infinite years", monthly: 1000, rate: 12, years: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Result{}, PeriodicMonthly(tt.monthly, tt.rate, tt.years))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "Plain integer", in: "5000", want: 5000},
		{name: "Decimal", in: "123.45", want: 123.45},
		{name: "Surrounding spaces", in: "  42.5 ", want: 42.5},
		{name: "Empty", in: "", want: 0},
		{name: "Letters", in: "abc", want: 0},
		{name: "Trailing letters", in: "12x", want: 0},
		{name: "NaN literal rejected", in: "NaN", want: 0},
		{name: "Overflow rejected", in: "1e400", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.in))
		})
	}
}
