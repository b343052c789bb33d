// Package pricing turns a loan's projected cash flows into a
// risk-adjusted return: present value, expected loss, economic
// capital, and the RAROC ratio.
package pricing

import "fmt"

// InvalidDiscountRateError reports a per-period discount rate at or
// below -1, where the discount factor 1/(1+d)^t blows up or flips sign.
type InvalidDiscountRateError struct {
	Rate float64
}

func (e *InvalidDiscountRateError) Error() string {
	return fmt.Sprintf("pricing: discount rate %.6f must be greater than -1", e.Rate)
}

// DiscountOptions controls where on the timeline the valuation sits.
type DiscountOptions struct {
	// FromPeriodZero values the first cash flow at t=0 (undiscounted)
	// instead of the default t=1.
	FromPeriodZero bool
}

// Discount computes the present value of a periodic cash flow
// sequence at per-period rate d:
//
//	PV = sum cf[i] / (1+d)^t
//
// with t starting at 1 (or 0, per opts). Terms accumulate in period
// order; the error characteristics of the sum depend on that order
// and it must not be changed.
func Discount(cashflows []float64, d float64, opts DiscountOptions) (float64, error) {
	if d <= -1 {
		return 0, &InvalidDiscountRateError{Rate: d}
	}

	factor := 1.0
	if opts.FromPeriodZero {
		factor = 1 + d // pre-scale so the first division lands on t=0
	}

	var pv float64
	for _, cf := range cashflows {
		factor /= 1 + d
		pv += cf * factor
	}
	return pv, nil
}

// DiscountFactor returns 1/(1+d)^t for reporting alongside schedules.
func DiscountFactor(d float64, t int) float64 {
	f := 1.0
	for i := 0; i < t; i++ {
		f /= 1 + d
	}
	return f
}
