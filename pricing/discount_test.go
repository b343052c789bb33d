package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cashflows []float64
		rate      float64
		opts      DiscountOptions
		expected  float64
	}{
		{
			name:      "single_flow_one_period",
			cashflows: []float64{105},
			rate:      0.05,
			expected:  100,
		},
		{
			name:      "two_periods",
			cashflows: []float64{100, 100},
			rate:      0.10,
			expected:  100/1.1 + 100/1.21,
		},
		{
			name:      "zero_rate_is_plain_sum",
			cashflows: []float64{10, 20, 30},
			rate:      0,
			expected:  60,
		},
		{
			name:      "all_zeros",
			cashflows: []float64{0, 0, 0, 0},
			rate:      0.0375,
			expected:  0,
		},
		{
			name:      "negative_rate_above_floor",
			cashflows: []float64{100},
			rate:      -0.5,
			expected:  200,
		},
		{
			name:      "from_period_zero",
			cashflows: []float64{100, 100},
			rate:      0.10,
			opts:      DiscountOptions{FromPeriodZero: true},
			expected:  100 + 100/1.1,
		},
		{
			name:      "empty_sequence",
			cashflows: nil,
			rate:      0.05,
			expected:  0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pv, err := Discount(tt.cashflows, tt.rate, tt.opts)
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, pv, 1e-9)
		})
	}
}

func TestDiscountInvalidRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []float64{-1, -1.5, -100} {
		_, err := Discount([]float64{100}, rate, DiscountOptions{})
		var idre *InvalidDiscountRateError
		assert.True(t, errors.As(err, &idre))
		assert.Equal(t, rate, idre.Rate)
	}
}

func TestDiscountFactor(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, DiscountFactor(0.05, 0), 1e-12)
	assert.InDelta(t, 1/1.05, DiscountFactor(0.05, 1), 1e-12)
	assert.InDelta(t, math.Pow(1.05, -24), DiscountFactor(0.05, 24), 1e-9)
}
