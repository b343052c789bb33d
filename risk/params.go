// Package risk computes the credit-risk side of loan pricing: expected
// loss and the economic-capital charge the risk-adjusted return is
// measured against.
package risk

import "github.com/rustyeddy/raroc/rating"

// Params are the credit-risk parameters for one exposure. Resolved
// once per evaluation and never mutated.
type Params struct {
	PD  float64 // probability of default, 0 < PD <= 1
	LGD float64 // loss given default, 0 <= LGD <= 1
	EAD float64 // exposure at default
}

// Resolve looks up PD and LGD from the master rating scales. EAD
// defaults to the original principal; pass a reference-period balance
// to measure the exposure elsewhere in the life of the loan.
func Resolve(pdRating int, lgdGrade string, ead float64) (Params, error) {
	pd, err := rating.LookupPD(pdRating)
	if err != nil {
		return Params{}, err
	}
	lgd, err := rating.LookupLGD(lgdGrade)
	if err != nil {
		return Params{}, err
	}
	return Params{PD: pd, LGD: lgd, EAD: ead}, nil
}

// ExpectedLoss is the mean credit loss over the horizon: PD * LGD * EAD.
func ExpectedLoss(p Params) float64 {
	return p.PD * p.LGD * p.EAD
}
