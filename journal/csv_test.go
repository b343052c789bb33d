package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSVJournalHeaders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	resultsPath := filepath.Join(dir, "results.csv")
	schedulePath := filepath.Join(dir, "schedules.csv")

	j, err := NewCSV(resultsPath, schedulePath)
	assert.NoError(t, err)
	assert.NoError(t, j.Close())

	resultsData, err := os.ReadFile(resultsPath)
	assert.NoError(t, err)
	scheduleData, err := os.ReadFile(schedulePath)
	assert.NoError(t, err)

	rh, err := csv.NewReader(strings.NewReader(string(resultsData))).Read()
	assert.NoError(t, err)
	assert.Equal(t, resultHeader, rh)

	sh, err := csv.NewReader(strings.NewReader(string(scheduleData))).Read()
	assert.NoError(t, err)
	assert.Equal(t, scheduleHeader, sh)
}

func TestCSVJournalRecordResult(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	resultsPath := filepath.Join(dir, "results.csv")

	j, err := NewCSV(resultsPath, "")
	assert.NoError(t, err)

	err = j.RecordResult(ResultRecord{
		RunID:           "01RUN",
		LoanID:          "LOAN-001",
		Reference:       "45208",
		PVNetIncome:     1969.5,
		ExpectedLoss:    800,
		EconomicCapital: 44799.28,
		RAROC:           0.0261,
	})
	assert.NoError(t, err)

	// Schedule rows are a no-op without a schedule file.
	assert.NoError(t, j.RecordSchedule(ScheduleRow{RunID: "01RUN", LoanID: "LOAN-001", Period: 1}))
	assert.NoError(t, j.Close())

	data, err := os.ReadFile(resultsPath)
	assert.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(data)))
	_, err = r.Read() // header
	assert.NoError(t, err)
	row, err := r.Read()
	assert.NoError(t, err)

	assert.Equal(t, "01RUN", row[0])
	assert.Equal(t, "LOAN-001", row[1])
	assert.Equal(t, "45208", row[2])
	assert.Equal(t, "1969.500000", row[3])
	assert.Equal(t, "800.000000", row[4])
	assert.Equal(t, "", row[7])
}

func TestCSVJournalRecordsErrorRows(t *testing.T) {
	t.Parallel()

	resultsPath := filepath.Join(t.TempDir(), "results.csv")
	j, err := NewCSV(resultsPath, "")
	assert.NoError(t, err)

	err = j.RecordResult(ResultRecord{
		RunID:  "01RUN",
		LoanID: "LOAN-BAD",
		Error:  `rating: unknown PD code "14"`,
	})
	assert.NoError(t, err)
	assert.NoError(t, j.Close())

	data, err := os.ReadFile(resultsPath)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "LOAN-BAD")
	assert.Contains(t, string(data), "unknown PD code")
}
