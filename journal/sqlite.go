package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordResult(r ResultRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO results
		(run_id, loan_id, reference, pv_net_income, expected_loss, economic_capital, raroc, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.LoanID, r.Reference,
		r.PVNetIncome, r.ExpectedLoss, r.EconomicCapital, r.RAROC, r.Error,
	)
	return err
}

func (j *SQLiteJournal) RecordSchedule(s ScheduleRow) error {
	_, err := j.db.Exec(`
		INSERT INTO schedules
		(run_id, loan_id, period, payment, interest, principal, balance,
		 interest_income, interest_expense, non_interest_income, non_interest_expense,
		 net_income, discount_factor)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.RunID, s.LoanID, s.Period, s.Payment, s.Interest, s.Principal, s.Balance,
		s.InterestIncome, s.InterestExpense, s.NonInterestIncome, s.NonInterestExpense,
		s.Net, s.DiscountFactor,
	)
	return err
}

// ListResultsByRunID returns the result rows for one batch run, in
// loan id order.
func (j *SQLiteJournal) ListResultsByRunID(runID string) ([]ResultRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, loan_id, reference, pv_net_income, expected_loss, economic_capital, raroc, error
		FROM results WHERE run_id = ? ORDER BY loan_id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		var r ResultRecord
		if err := rows.Scan(&r.RunID, &r.LoanID, &r.Reference,
			&r.PVNetIncome, &r.ExpectedLoss, &r.EconomicCapital, &r.RAROC, &r.Error); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListScheduleByLoan returns the expanded schedule for one loan in one
// run, in period order.
func (j *SQLiteJournal) ListScheduleByLoan(runID, loanID string) ([]ScheduleRow, error) {
	rows, err := j.db.Query(`
		SELECT run_id, loan_id, period, payment, interest, principal, balance,
		       interest_income, interest_expense, non_interest_income, non_interest_expense,
		       net_income, discount_factor
		FROM schedules WHERE run_id = ? AND loan_id = ? ORDER BY period`, runID, loanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ScheduleRow
	for rows.Next() {
		var s ScheduleRow
		if err := rows.Scan(&s.RunID, &s.LoanID, &s.Period, &s.Payment, &s.Interest,
			&s.Principal, &s.Balance, &s.InterestIncome, &s.InterestExpense,
			&s.NonInterestIncome, &s.NonInterestExpense, &s.Net, &s.DiscountFactor); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
