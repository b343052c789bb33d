package cashflow

import "fmt"

// Stream is a per-period amount sequence. Two kinds exist: a scalar
// that broadcasts the same amount to every period, and an explicit
// per-period slice whose length must equal the loan term.
type Stream interface {
	amounts(term int) ([]float64, error)
}

// Flat is a scalar stream: the same amount every period.
type Flat float64

func (f Flat) amounts(term int) ([]float64, error) {
	out := make([]float64, term)
	for i := range out {
		out[i] = float64(f)
	}
	return out, nil
}

// PerPeriod is an explicit per-period stream. Its length must equal
// the loan term exactly.
type PerPeriod []float64

func (p PerPeriod) amounts(term int) ([]float64, error) {
	if len(p) != term {
		return nil, fmt.Errorf("stream length %d does not match term %d", len(p), term)
	}
	return []float64(p), nil
}

// FlatStreamUntil returns a stream paying amount for the first
// `periods` periods and zero afterwards. This mirrors fee structures
// that collect, say, a servicing fee only during an initial window.
func FlatStreamUntil(amount float64, periods, term int) Stream {
	s := make(PerPeriod, term)
	for i := 0; i < term && i < periods; i++ {
		s[i] = amount
	}
	return s
}

func materialize(s Stream, term int) ([]float64, error) {
	if s == nil {
		return make([]float64, term), nil
	}
	return s.amounts(term)
}
