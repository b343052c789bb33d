package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/rustyeddy/raroc/loan"
	"github.com/rustyeddy/raroc/pricing"
	"github.com/stretchr/testify/assert"
)

func testRecords(n int) []Record {
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, Record{
			ID: fmt.Sprintf("LOAN-%03d", i),
			Loan: loan.Loan{
				Principal:  float64(10000 + i*1000),
				AnnualRate: 0.06,
				Term:       12 + i%24,
				PDRating:   1 + i%13,
				LGDGrade:   "C",
			},
		})
	}
	return records
}

func TestRunnerPreservesInputOrder(t *testing.T) {
	t.Parallel()

	records := testRecords(50)
	r := &Runner{
		Source:   NewSliceSource(records),
		Defaults: Defaults{FTPRate: 0.024, DiscountRate: 0.025},
		Workers:  8,
	}

	run, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, run.RunID)
	assert.Len(t, run.Outcomes, len(records))

	for i, o := range run.Outcomes {
		assert.Equal(t, records[i].ID, o.Record.ID)
		assert.NoError(t, o.Err)
	}
}

func TestRunnerMatchesSequentialEvaluation(t *testing.T) {
	t.Parallel()

	records := testRecords(10)
	defaults := Defaults{FTPRate: 0.024, DiscountRate: 0.025}

	r := &Runner{Source: NewSliceSource(records), Defaults: defaults, Workers: 4}
	run, err := r.Run(context.Background())
	assert.NoError(t, err)

	for i, rec := range records {
		want, err := pricing.Evaluate(rec.Loan, pricing.Inputs{
			FTPRate:      defaults.FTPRate,
			DiscountRate: defaults.DiscountRate,
		})
		assert.NoError(t, err)
		assert.Equal(t, want, run.Outcomes[i].Result)
	}
}

func TestRunnerCarriesRecordErrors(t *testing.T) {
	t.Parallel()

	records := testRecords(3)
	records[1].Loan.PDRating = 99 // invalid; must not sink the batch

	r := &Runner{
		Source:   NewSliceSource(records),
		Defaults: Defaults{FTPRate: 0.024, DiscountRate: 0.025},
	}

	run, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Len(t, run.Outcomes, 3)
	assert.NoError(t, run.Outcomes[0].Err)
	assert.Error(t, run.Outcomes[1].Err)
	assert.NoError(t, run.Outcomes[2].Err)
}

func TestRunnerRecordOverrides(t *testing.T) {
	t.Parallel()

	ftp := 0.05
	records := testRecords(2)
	records[1].FTPRate = &ftp

	r := &Runner{
		Source:   NewSliceSource(records),
		Defaults: Defaults{FTPRate: 0.024, DiscountRate: 0.025},
		Workers:  1,
	}

	run, err := r.Run(context.Background())
	assert.NoError(t, err)

	// A higher funding cost must lower PV net income.
	base, err := pricing.Evaluate(records[1].Loan, pricing.Inputs{FTPRate: 0.024, DiscountRate: 0.025})
	assert.NoError(t, err)
	assert.Less(t, run.Outcomes[1].Result.PVNetIncome, base.PVNetIncome)
}

func TestRunnerCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Runner{
		Source:   NewSliceSource(testRecords(100)),
		Defaults: Defaults{FTPRate: 0.024, DiscountRate: 0.025},
		Workers:  1,
	}

	_, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerDefaultWorkers(t *testing.T) {
	t.Parallel()

	r := &Runner{
		Source:   NewSliceSource(testRecords(5)),
		Defaults: Defaults{FTPRate: 0.024, DiscountRate: 0.025},
	}
	run, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Len(t, run.Outcomes, 5)
}
