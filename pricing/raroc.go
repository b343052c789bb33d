package pricing

import "github.com/rustyeddy/raroc/risk"

// Result is the priced outcome for one loan. It is a value owned by
// the caller; nothing in this package retains it.
type Result struct {
	PVNetIncome     float64
	ExpectedLoss    float64
	EconomicCapital float64
	RAROC           float64

	Risk risk.Params // resolved parameters the figures were built from
}

// RAROC combines a present-valued income stream with credit-risk
// parameters. Expected loss is deducted from income; the remainder is
// measured against the economic-capital buffer.
func RAROC(pvNetIncome float64, p risk.Params, policy risk.CapitalPolicy) (Result, error) {
	ec, err := risk.EconomicCapital(p, policy)
	if err != nil {
		return Result{}, err
	}

	el := risk.ExpectedLoss(p)
	return Result{
		PVNetIncome:     pvNetIncome,
		ExpectedLoss:    el,
		EconomicCapital: ec,
		RAROC:           (pvNetIncome - el) / ec,
		Risk:            p,
	}, nil
}
