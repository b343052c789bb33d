// Package batch evaluates many loan records through the pricing
// pipeline. Inputs arrive through a Source (file-backed or in-memory);
// evaluations fan out across a worker pool and results come back in
// input order.
package batch

import (
	"github.com/rustyeddy/raroc/cashflow"
	"github.com/rustyeddy/raroc/loan"
)

// Record is one loan to price, carrying per-record overrides of the
// run-wide pricing assumptions. The engine never sees where a record
// came from; CSV rows and form entries produce the same value.
type Record struct {
	ID        string
	Reference string // free-form caller tag (branch, zip code, ...)
	Loan      loan.Loan

	// Per-record overrides; nil means use the run defaults.
	FTPRate      *float64
	DiscountRate *float64
	EADOverride  *float64

	NonInterestIncome  cashflow.Stream
	NonInterestExpense cashflow.Stream
}

// Source yields loan records one at a time. Implementations should be
// deterministic and return (ok=false, err=nil) at end of input.
type Source interface {
	Next() (r Record, ok bool, err error)
	Close() error
}

// SliceSource serves records from memory, the path taken by manual
// form entry or tests.
type SliceSource struct {
	records []Record
	pos     int
}

// NewSliceSource wraps records in a Source.
func NewSliceSource(records []Record) *SliceSource {
	return &SliceSource{records: records}
}

func (s *SliceSource) Next() (Record, bool, error) {
	if s.pos >= len(s.records) {
		return Record{}, false, nil
	}
	r := s.records[s.pos]
	s.pos++
	return r, true, nil
}

func (s *SliceSource) Close() error { return nil }
