package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/rustyeddy/raroc/cashflow"
	"github.com/rustyeddy/raroc/loan"
	"github.com/rustyeddy/raroc/rating"
	"github.com/rustyeddy/raroc/risk"
	"github.com/stretchr/testify/assert"
)

func sampleLoan() loan.Loan {
	return loan.Loan{
		Principal:  100000,
		AnnualRate: 0.06,
		Term:       12,
		PDRating:   5,
		LGDGrade:   "C",
	}
}

func TestEvaluateWorkedExample(t *testing.T) {
	t.Parallel()

	res, err := Evaluate(sampleLoan(), Inputs{
		FTPRate:      0.024,
		DiscountRate: 0.025,
	})
	assert.NoError(t, err)

	// PD rating 5 -> 0.02, grade C -> 0.40, EAD defaults to principal.
	assert.Equal(t, 0.02, res.Risk.PD)
	assert.Equal(t, 0.40, res.Risk.LGD)
	assert.Equal(t, 100000.0, res.Risk.EAD)
	assert.InDelta(t, 800.00, res.ExpectedLoss, 0.01)

	wantEC := risk.DefaultULMultiplier * 100000 * 0.40 * math.Sqrt(0.02*0.98)
	assert.InDelta(t, wantEC, res.EconomicCapital, 1e-6)

	assert.InDelta(t, (res.PVNetIncome-res.ExpectedLoss)/res.EconomicCapital, res.RAROC, 1e-12)
}

func TestEvaluatePVMatchesManualDiscounting(t *testing.T) {
	t.Parallel()

	l := sampleLoan()
	in := Inputs{
		FTPRate:            0.024,
		DiscountRate:       0.025,
		NonInterestIncome:  cashflow.Flat(100),
		NonInterestExpense: cashflow.Flat(200),
	}

	res, err := Evaluate(l, in)
	assert.NoError(t, err)

	sched, err := loan.Amortize(l)
	assert.NoError(t, err)
	lines, err := cashflow.Build(sched, cashflow.Inputs{
		FTPRate:            in.FTPRate / 12,
		NonInterestIncome:  in.NonInterestIncome,
		NonInterestExpense: in.NonInterestExpense,
	})
	assert.NoError(t, err)
	pv, err := Discount(cashflow.Net(lines), in.DiscountRate/12, DiscountOptions{})
	assert.NoError(t, err)

	assert.InDelta(t, pv, res.PVNetIncome, 1e-9)
}

func TestEvaluateMonotoneInPD(t *testing.T) {
	t.Parallel()

	// Walking the PD scale upward with everything else fixed must
	// never improve the ratio.
	prev := math.Inf(1)
	for _, code := range rating.PDCodes() {
		l := sampleLoan()
		l.PDRating = code
		res, err := Evaluate(l, Inputs{FTPRate: 0.024, DiscountRate: 0.025})
		assert.NoError(t, err)
		assert.LessOrEqual(t, res.RAROC, prev, "PD rating %d", code)
		prev = res.RAROC
	}
}

func TestEvaluateEADOverride(t *testing.T) {
	t.Parallel()

	ead := 55000.0
	res, err := Evaluate(sampleLoan(), Inputs{
		FTPRate:      0.024,
		DiscountRate: 0.025,
		EADOverride:  &ead,
	})
	assert.NoError(t, err)
	assert.Equal(t, ead, res.Risk.EAD)
	assert.InDelta(t, 55000*0.02*0.40, res.ExpectedLoss, 1e-9)
}

func TestEvaluateCapitalPolicy(t *testing.T) {
	t.Parallel()

	base, err := Evaluate(sampleLoan(), Inputs{FTPRate: 0.024, DiscountRate: 0.025})
	assert.NoError(t, err)

	doubled, err := Evaluate(sampleLoan(), Inputs{
		FTPRate:      0.024,
		DiscountRate: 0.025,
		Capital:      risk.CapitalPolicy{ULMultiplier: 2 * risk.DefaultULMultiplier},
	})
	assert.NoError(t, err)

	assert.InDelta(t, 2*base.EconomicCapital, doubled.EconomicCapital, 1e-6)
	assert.InDelta(t, base.RAROC/2, doubled.RAROC, 1e-9)
}

func TestEvaluateErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid_rating_no_partial_result", func(t *testing.T) {
		t.Parallel()
		l := sampleLoan()
		l.PDRating = 14
		res, err := Evaluate(l, Inputs{FTPRate: 0.024, DiscountRate: 0.025})
		var ire *rating.InvalidRatingError
		assert.True(t, errors.As(err, &ire))
		assert.Zero(t, res)
	})

	t.Run("zero_term", func(t *testing.T) {
		t.Parallel()
		l := sampleLoan()
		l.Term = 0
		_, err := Evaluate(l, Inputs{})
		var ilte *loan.InvalidLoanTermsError
		assert.True(t, errors.As(err, &ilte))
	})

	t.Run("discount_rate_floor", func(t *testing.T) {
		t.Parallel()
		_, err := Evaluate(sampleLoan(), Inputs{DiscountRate: -12})
		var idre *InvalidDiscountRateError
		assert.True(t, errors.As(err, &idre))
	})
}
