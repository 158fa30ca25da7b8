// =================================
// File: internal/format/money.go
// =================================

// Package format renders amounts for display. The engines work in plain
// float64; currency grouping lives here at the display boundary only.
package format

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount formats a value with the currency's symbol and digit grouping,
// e.g. Amount(1200000, "INR") == "₹1,200,000.00". Non-finite values render
// as zero, matching the calculators' fail-soft contract.
func Amount(v float64, code string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	// The money.New constructor is the only way to get a never-nil currency.
	cur := *money.New(0, code).Currency()
	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedAmount is Amount with an explicit sign, for gain/loss figures.
func SignedAmount(v float64, code string) string {
	if v < 0 {
		return "-" + Amount(-v, code)
	}
	return "+" + Amount(v, code)
}

// Percent formats a percentage with two decimals.
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("%.2f%%", v)
}
