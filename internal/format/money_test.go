// =================================
// File: internal/format/money_test.go
// =================================
package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		code string
		want string
	}{
		{name: "Rupee grouping", v: 1200000, code: "INR", want: "₹1,200,000.00"},
		{name: "Documented lumpsum result", v: 1085, code: "INR", want: "₹1,085.00"},
		{name: "Dollar", v: 42.5, code: "USD", want: "$42.50"},
		{name: "Zero", v: 0, code: "INR", want: "₹0.00"},
		{name: "NaN renders as zero", v: math.NaN(), code: "INR", want: "₹0.00"},
		{name: "Infinity renders as zero", v: math.Inf(1), code: "INR", want: "₹0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Amount(tt.v, tt.code))
		})
	}
}

func TestSignedAmount(t *testing.T) {
	assert.Equal(t, "+₹85.00", SignedAmount(85, "INR"))
	assert.Equal(t, "-₹85.00", SignedAmount(-85, "INR"))
	assert.Equal(t, "+₹0.00", SignedAmount(0, "INR"))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "8.50%", Percent(8.5))
	assert.Equal(t, "-3.25%", Percent(-3.25))
	assert.Equal(t, "0.00%", Percent(math.NaN()))
}
