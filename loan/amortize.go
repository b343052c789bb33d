package loan

import "math"

// Entry is one row of an amortization schedule. Period indexes start
// at 1. BeginBalance is the outstanding balance before the payment,
// Balance the balance after.
type Entry struct {
	Period       int
	BeginBalance float64
	Payment      float64
	Interest     float64
	Principal    float64
	Balance      float64
}

// Schedule is the ordered payment schedule for one loan, period 1..n.
type Schedule []Entry

// Payment returns the fixed per-period payment for principal p at
// per-period rate r over n periods. The zero-rate case is a straight
// principal split; it must not go through the annuity formula, which
// divides by r.
func Payment(p, r float64, n int) float64 {
	if r == 0 {
		return p / float64(n)
	}
	pow := math.Pow(1+r, float64(n))
	return p * (r * pow) / (pow - 1)
}

// Amortize builds the full level-payment schedule for l. The final
// period's principal portion is forced equal to the remaining balance
// so the schedule always amortizes to exactly zero regardless of
// floating-point drift in the preceding periods.
func Amortize(l Loan) (Schedule, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	r := l.PeriodRate()
	payment := Payment(l.Principal, r, l.Term)

	sched := make(Schedule, 0, l.Term)
	balance := l.Principal

	for period := 1; period <= l.Term; period++ {
		interest := balance * r
		principal := payment - interest
		pay := payment

		if period == l.Term {
			// absorb rounding drift in the last row
			principal = balance
			pay = principal + interest
		}

		begin := balance
		balance -= principal
		if period == l.Term {
			balance = 0
		}

		sched = append(sched, Entry{
			Period:       period,
			BeginBalance: begin,
			Payment:      pay,
			Interest:     interest,
			Principal:    principal,
			Balance:      balance,
		})
	}

	return sched, nil
}

// TotalPrincipal sums the principal portions across the schedule.
func (s Schedule) TotalPrincipal() float64 {
	var sum float64
	for _, e := range s {
		sum += e.Principal
	}
	return sum
}

// TotalInterest sums the interest portions across the schedule.
func (s Schedule) TotalInterest() float64 {
	var sum float64
	for _, e := range s {
		sum += e.Interest
	}
	return sum
}
