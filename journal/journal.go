// Package journal persists pricing results. Two sinks exist: CSV
// files for spreadsheet-bound output and SQLite for anything that
// will be queried later. The journal is the output side of a batch
// run; the pricing engine itself never touches it.
package journal

// ResultRecord is one priced loan, one output row.
type ResultRecord struct {
	RunID     string
	LoanID    string
	Reference string

	PVNetIncome     float64
	ExpectedLoss    float64
	EconomicCapital float64
	RAROC           float64

	// Error carries the pricing failure for records that could not be
	// evaluated; the numeric fields are zero in that case.
	Error string
}

// ScheduleRow is one period of a loan's expanded schedule, written
// only when the caller asks for the full amortization detail.
type ScheduleRow struct {
	RunID  string
	LoanID string
	Period int

	Payment   float64
	Interest  float64
	Principal float64
	Balance   float64

	InterestIncome     float64
	InterestExpense    float64
	NonInterestIncome  float64
	NonInterestExpense float64
	Net                float64
	DiscountFactor     float64
}

// Journal records pricing output. Implementations flush on Close.
type Journal interface {
	RecordResult(ResultRecord) error
	RecordSchedule(ScheduleRow) error
	Close() error
}
