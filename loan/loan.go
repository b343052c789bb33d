// Package loan models commercial term-loan contracts and builds their
// level-payment amortization schedules.
package loan

import "fmt"

// Loan holds the contractual terms of a single term loan. All rates are
// fractions (0.06 = 6% annual). A Loan is a plain value: construct it,
// validate it, and pass it around by copy.
type Loan struct {
	Principal  float64 // original balance, > 0
	AnnualRate float64 // nominal annual rate, >= 0
	Term       int     // number of payment periods, > 0
	Frequency  int     // payments per year; 0 means monthly (12)

	PDRating int    // obligor rating, 1..13
	LGDGrade string // facility grade, A..H
}

// InvalidLoanTermsError reports loan terms the scheduler cannot price.
type InvalidLoanTermsError struct {
	Field string
	Msg   string
}

func (e *InvalidLoanTermsError) Error() string {
	return fmt.Sprintf("loan: invalid %s: %s", e.Field, e.Msg)
}

// PeriodsPerYear returns the payment frequency, defaulting to monthly.
func (l Loan) PeriodsPerYear() int {
	if l.Frequency <= 0 {
		return 12
	}
	return l.Frequency
}

// PeriodRate returns the per-period interest rate.
func (l Loan) PeriodRate() float64 {
	return l.AnnualRate / float64(l.PeriodsPerYear())
}

// Validate checks the terms the amortization math depends on. Rating
// codes are validated separately at lookup time.
func (l Loan) Validate() error {
	if l.Principal <= 0 {
		return &InvalidLoanTermsError{Field: "principal", Msg: "must be positive"}
	}
	if l.Term <= 0 {
		return &InvalidLoanTermsError{Field: "term", Msg: "must be positive"}
	}
	if l.AnnualRate < 0 {
		return &InvalidLoanTermsError{Field: "rate", Msg: "must not be negative"}
	}
	if l.Frequency < 0 {
		return &InvalidLoanTermsError{Field: "frequency", Msg: "must not be negative"}
	}
	return nil
}
