package risk

import (
	"fmt"
	"math"
)

// DefaultULMultiplier scales the one-standard-deviation loss proxy to
// a capital charge. It is a policy choice, not a law of nature; tune
// it through CapitalPolicy (config key capital.ul_multiplier).
const DefaultULMultiplier = 8.0

// CapitalPolicy configures how economic capital is sized.
type CapitalPolicy struct {
	// ULMultiplier scales the unexpected-loss proxy
	// EAD * LGD * sqrt(PD * (1-PD)) into the capital charge.
	ULMultiplier float64
}

// DefaultCapitalPolicy returns the house policy.
func DefaultCapitalPolicy() CapitalPolicy {
	return CapitalPolicy{ULMultiplier: DefaultULMultiplier}
}

// DegenerateCapitalError reports an economic capital of zero or less,
// under which a return-on-capital ratio is undefined. Callers must
// surface this, not substitute a zero.
type DegenerateCapitalError struct {
	Capital float64
}

func (e *DegenerateCapitalError) Error() string {
	return fmt.Sprintf("risk: economic capital %.4f is not positive; RAROC undefined", e.Capital)
}

// EconomicCapital sizes the capital buffer for unexpected losses:
//
//	k * EAD * LGD * sqrt(PD * (1-PD))
//
// sqrt(PD*(1-PD)) is the standard deviation of a default indicator, so
// the buffer collapses to zero at PD = 0 and PD = 1 where there is no
// default uncertainty; those cases return DegenerateCapitalError.
func EconomicCapital(p Params, policy CapitalPolicy) (float64, error) {
	ec := policy.ULMultiplier * p.EAD * p.LGD * math.Sqrt(p.PD*(1-p.PD))
	if ec <= 0 {
		return 0, &DegenerateCapitalError{Capital: ec}
	}
	return ec, nil
}
