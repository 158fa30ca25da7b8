// =================================
// File: internal/projection/projection.go
// =================================
package projection

import (
	"math"
	"strconv"
	"strings"
)

// Result holds the three display values of a projection. The fields are
// always recomputed together; a Result is never partially updated.
type Result struct {
	Invested float64 `json:"invested_amount"`
	Total    float64 `json:"total_amount"`
	Returns  float64 `json:"estimated_returns"`
}

// Lumpsum evaluates a one-time investment against a trailing cumulative
// return. The percentage is the realized return of the chosen period
// (e.g. the instrument's 6M/1Y/3Y figure), not an annualized rate, so no
// compounding is applied:
//
//	total = principal + principal * (pct / 100)
//
// Non-finite input yields 0. Never panics.
func Lumpsum(principal, cumulativeReturnPercent float64) float64 {
	if !isFinite(principal) || !isFinite(cumulativeReturnPercent) {
		return 0
	}
	return principal + principal*(cumulativeReturnPercent/100)
}

// PeriodicMonthly projects a fixed monthly contribution stream over the
// given number of years using the future-value-of-annuity-due formula.
// A zero rate is special-cased: the general formula divides by the
// monthly rate and would otherwise produce NaN.
func PeriodicMonthly(monthly, annualRatePercent, years float64) Result {
	if !isFinite(monthly) || !isFinite(annualRatePercent) || !isFinite(years) {
		return Result{}
	}

	n := years * 12
	if n <= 0 {
		return Result{}
	}

	invested := monthly * n

	var total float64
	if r := annualRatePercent / 100 / 12; r == 0 {
		total = invested
	} else {
		total = monthly * ((math.Pow(1+r, n) - 1) / r) * (1 + r)
	}

	return Result{
		Invested: invested,
		Total:    total,
		Returns:  total - invested,
	}
}

// ParseAmount converts user-typed text into a number with the fail-soft
// contract of a live calculator: anything that is not a finite decimal
// number is 0. The caller keeps the raw text for display.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !isFinite(v) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
