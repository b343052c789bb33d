// Package cashflow projects the periodic income and expense lines of a
// loan from its amortization schedule: contractual interest income, an
// FTP funding charge against the outstanding balance, and non-interest
// fee/cost streams.
package cashflow

import (
	"fmt"

	"github.com/rustyeddy/raroc/loan"
)

// Line is one period's cash flows. Net is income minus expense:
//
//	Net = InterestIncome + NonInterestIncome - InterestExpense - NonInterestExpense
type Line struct {
	Period             int
	InterestIncome     float64
	InterestExpense    float64
	NonInterestIncome  float64
	NonInterestExpense float64
	Net                float64
}

// Inputs configures the projection for one loan.
type Inputs struct {
	// FTPRate is the per-period funds-transfer-pricing rate charged on
	// the beginning-of-period balance, representing the internal cost
	// of funding the loan. Distinct from the customer rate.
	FTPRate float64

	// NonInterestIncome and NonInterestExpense are per-period fee and
	// cost streams. A nil stream means zero every period.
	NonInterestIncome  Stream
	NonInterestExpense Stream
}

// Build derives one Line per schedule entry. The result is a pure
// function of its inputs; identical inputs produce identical lines.
func Build(sched loan.Schedule, in Inputs) ([]Line, error) {
	n := len(sched)

	nii, err := materialize(in.NonInterestIncome, n)
	if err != nil {
		return nil, fmt.Errorf("non-interest income: %w", err)
	}
	nie, err := materialize(in.NonInterestExpense, n)
	if err != nil {
		return nil, fmt.Errorf("non-interest expense: %w", err)
	}

	lines := make([]Line, 0, n)
	for i, e := range sched {
		l := Line{
			Period:             e.Period,
			InterestIncome:     e.Interest,
			InterestExpense:    e.BeginBalance * in.FTPRate,
			NonInterestIncome:  nii[i],
			NonInterestExpense: nie[i],
		}
		l.Net = l.InterestIncome + l.NonInterestIncome - l.InterestExpense - l.NonInterestExpense
		lines = append(lines, l)
	}
	return lines, nil
}

// Net extracts the net cash flow sequence from lines, in period order.
func Net(lines []Line) []float64 {
	out := make([]float64, len(lines))
	for i, l := range lines {
		out[i] = l.Net
	}
	return out
}
