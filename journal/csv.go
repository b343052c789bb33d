package journal

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVJournal writes results to one CSV file and, optionally, expanded
// schedules to a second. Pass an empty schedulePath to skip schedules.
type CSVJournal struct {
	results   *csv.Writer
	schedules *csv.Writer
	rf, sf    *os.File
}

var resultHeader = []string{
	"run_id", "loan_id", "reference",
	"pv_net_income", "expected_loss", "economic_capital", "raroc", "error",
}

var scheduleHeader = []string{
	"run_id", "loan_id", "period",
	"payment", "interest", "principal", "balance",
	"interest_income", "interest_expense",
	"non_interest_income", "non_interest_expense",
	"net_income", "discount_factor",
}

// NewCSV creates the output files and writes their headers.
func NewCSV(resultsPath, schedulePath string) (*CSVJournal, error) {
	rf, err := os.Create(resultsPath)
	if err != nil {
		return nil, err
	}

	j := &CSVJournal{results: csv.NewWriter(rf), rf: rf}
	if err := j.results.Write(resultHeader); err != nil {
		rf.Close()
		return nil, err
	}

	if schedulePath != "" {
		sf, err := os.Create(schedulePath)
		if err != nil {
			rf.Close()
			return nil, err
		}
		j.sf = sf
		j.schedules = csv.NewWriter(sf)
		if err := j.schedules.Write(scheduleHeader); err != nil {
			j.Close()
			return nil, err
		}
	}

	j.results.Flush()
	if err := j.results.Error(); err != nil {
		j.Close()
		return nil, err
	}
	return j, nil
}

func (j *CSVJournal) RecordResult(r ResultRecord) error {
	err := j.results.Write([]string{
		r.RunID,
		r.LoanID,
		r.Reference,
		f(r.PVNetIncome),
		f(r.ExpectedLoss),
		f(r.EconomicCapital),
		f(r.RAROC),
		r.Error,
	})
	if err != nil {
		return err
	}
	j.results.Flush()
	return j.results.Error()
}

func (j *CSVJournal) RecordSchedule(s ScheduleRow) error {
	if j.schedules == nil {
		return nil
	}
	err := j.schedules.Write([]string{
		s.RunID,
		s.LoanID,
		strconv.Itoa(s.Period),
		f(s.Payment),
		f(s.Interest),
		f(s.Principal),
		f(s.Balance),
		f(s.InterestIncome),
		f(s.InterestExpense),
		f(s.NonInterestIncome),
		f(s.NonInterestExpense),
		f(s.Net),
		f(s.DiscountFactor),
	})
	if err != nil {
		return err
	}
	j.schedules.Flush()
	return j.schedules.Error()
}

func (j *CSVJournal) Close() error {
	j.results.Flush()
	if err := j.results.Error(); err != nil {
		return err
	}
	if j.schedules != nil {
		j.schedules.Flush()
		if err := j.schedules.Error(); err != nil {
			return err
		}
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	if j.sf != nil {
		if err := j.sf.Close(); err != nil {
			return err
		}
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
