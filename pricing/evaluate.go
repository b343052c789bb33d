package pricing

import (
	"github.com/rustyeddy/raroc/cashflow"
	"github.com/rustyeddy/raroc/loan"
	"github.com/rustyeddy/raroc/risk"
)

// Inputs are the pricing assumptions for one evaluation. Rates are
// annual fractions; they are converted to per-period rates using the
// loan's payment frequency.
type Inputs struct {
	FTPRate      float64 // annual cost-of-funds rate
	DiscountRate float64 // annual discount rate

	NonInterestIncome  cashflow.Stream // nil means zero
	NonInterestExpense cashflow.Stream // nil means zero

	// EADOverride replaces the default exposure at default (the
	// original principal) with a caller-chosen reference balance.
	EADOverride *float64

	Capital  risk.CapitalPolicy
	Discount DiscountOptions
}

// Evaluate prices one loan end to end: amortization schedule, cash
// flow projection, discounting, risk lookup, RAROC. It is a pure
// function of its arguments — no I/O, no retained state — so
// independent loans may be evaluated concurrently.
//
// Validation happens up front; on any error no partial result is
// produced.
func Evaluate(l loan.Loan, in Inputs) (Result, error) {
	if err := l.Validate(); err != nil {
		return Result{}, err
	}
	if in.DiscountRate/float64(l.PeriodsPerYear()) <= -1 {
		return Result{}, &InvalidDiscountRateError{Rate: in.DiscountRate / float64(l.PeriodsPerYear())}
	}

	ead := l.Principal
	if in.EADOverride != nil {
		ead = *in.EADOverride
	}
	params, err := risk.Resolve(l.PDRating, l.LGDGrade, ead)
	if err != nil {
		return Result{}, err
	}

	sched, err := loan.Amortize(l)
	if err != nil {
		return Result{}, err
	}

	periods := float64(l.PeriodsPerYear())
	lines, err := cashflow.Build(sched, cashflow.Inputs{
		FTPRate:            in.FTPRate / periods,
		NonInterestIncome:  in.NonInterestIncome,
		NonInterestExpense: in.NonInterestExpense,
	})
	if err != nil {
		return Result{}, err
	}

	pv, err := Discount(cashflow.Net(lines), in.DiscountRate/periods, in.Discount)
	if err != nil {
		return Result{}, err
	}

	policy := in.Capital
	if policy.ULMultiplier == 0 {
		policy = risk.DefaultCapitalPolicy()
	}

	return RAROC(pv, params, policy)
}
