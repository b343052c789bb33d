// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS results (
	run_id TEXT NOT NULL,
	loan_id TEXT NOT NULL,
	reference TEXT NOT NULL,
	pv_net_income REAL NOT NULL,
	expected_loss REAL NOT NULL,
	economic_capital REAL NOT NULL,
	raroc REAL NOT NULL,
	error TEXT NOT NULL,
	PRIMARY KEY (run_id, loan_id)
);

CREATE TABLE IF NOT EXISTS schedules (
	run_id TEXT NOT NULL,
	loan_id TEXT NOT NULL,
	period INTEGER NOT NULL,
	payment REAL NOT NULL,
	interest REAL NOT NULL,
	principal REAL NOT NULL,
	balance REAL NOT NULL,
	interest_income REAL NOT NULL,
	interest_expense REAL NOT NULL,
	non_interest_income REAL NOT NULL,
	non_interest_expense REAL NOT NULL,
	net_income REAL NOT NULL,
	discount_factor REAL NOT NULL,
	PRIMARY KEY (run_id, loan_id, period)
);

CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
CREATE INDEX IF NOT EXISTS idx_schedules_run ON schedules(run_id, loan_id);
`
