package pricing

import "github.com/rustyeddy/raroc/cashflow"

// Summary aggregates a loan's cash flow lines into nominal and
// present-value totals per component, the figures a pricing desk
// reads off before looking at the ratio itself.
type Summary struct {
	TotalInterestIncome     float64
	TotalInterestExpense    float64
	TotalNonInterestIncome  float64
	TotalNonInterestExpense float64
	TotalNetIncome          float64

	PVInterestIncome     float64
	PVInterestExpense    float64
	PVNonInterestIncome  float64
	PVNonInterestExpense float64
	PVNetIncome          float64
}

// Summarize totals the lines nominally and discounted at per-period
// rate d. Each component is discounted with the same factors as the
// net stream, in period order.
func Summarize(lines []cashflow.Line, d float64, opts DiscountOptions) (Summary, error) {
	if d <= -1 {
		return Summary{}, &InvalidDiscountRateError{Rate: d}
	}

	var s Summary
	factor := 1.0
	if opts.FromPeriodZero {
		factor = 1 + d
	}

	for _, l := range lines {
		factor /= 1 + d

		s.TotalInterestIncome += l.InterestIncome
		s.TotalInterestExpense += l.InterestExpense
		s.TotalNonInterestIncome += l.NonInterestIncome
		s.TotalNonInterestExpense += l.NonInterestExpense
		s.TotalNetIncome += l.Net

		s.PVInterestIncome += l.InterestIncome * factor
		s.PVInterestExpense += l.InterestExpense * factor
		s.PVNonInterestIncome += l.NonInterestIncome * factor
		s.PVNonInterestExpense += l.NonInterestExpense * factor
		s.PVNetIncome += l.Net * factor
	}
	return s, nil
}
