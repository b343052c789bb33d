package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/rustyeddy/raroc/pkg/id"
	"github.com/rustyeddy/raroc/pricing"
	"github.com/rustyeddy/raroc/risk"
)

// Defaults are the run-wide pricing assumptions applied wherever a
// record carries no override.
type Defaults struct {
	FTPRate      float64
	DiscountRate float64
	Capital      risk.CapitalPolicy
	Discount     pricing.DiscountOptions
}

// Outcome pairs a record with its pricing result. Err is set when the
// record could not be priced; the runner never downgrades or skips
// errors on its own — that call belongs to the caller.
type Outcome struct {
	Record Record
	Result pricing.Result
	Err    error
}

// RunResult is one completed batch run.
type RunResult struct {
	RunID    string
	Outcomes []Outcome // in input order
}

// Runner prices every record a Source yields. Evaluations are
// independent and side-effect free, so they fan out across Workers
// goroutines; results are reassembled into input order before return.
type Runner struct {
	Source   Source
	Defaults Defaults

	// Workers caps concurrent evaluations; <= 0 means NumCPU.
	Workers int
}

// Run drains the source and prices each record. The only error
// returned is a source read failure or a cancelled context; per-record
// pricing errors ride back in their Outcome.
func (r *Runner) Run(ctx context.Context) (RunResult, error) {
	if r.Source == nil {
		return RunResult{}, fmt.Errorf("batch: Source is required")
	}
	defer r.Source.Close()

	var records []Record
	for {
		rec, ok, err := r.Source.Next()
		if err != nil {
			return RunResult{}, err
		}
		if !ok {
			break
		}
		records = append(records, rec)
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(records) {
		workers = len(records)
	}

	outcomes := make([]Outcome, len(records))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = r.evaluate(records[i])
			}
		}()
	}

	var ctxErr error
feed:
	for i := range records {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break feed
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if ctxErr != nil {
		return RunResult{}, ctxErr
	}
	return RunResult{RunID: id.New(), Outcomes: outcomes}, nil
}

func (r *Runner) evaluate(rec Record) Outcome {
	in := pricing.Inputs{
		FTPRate:            r.Defaults.FTPRate,
		DiscountRate:       r.Defaults.DiscountRate,
		NonInterestIncome:  rec.NonInterestIncome,
		NonInterestExpense: rec.NonInterestExpense,
		EADOverride:        rec.EADOverride,
		Capital:            r.Defaults.Capital,
		Discount:           r.Defaults.Discount,
	}
	if rec.FTPRate != nil {
		in.FTPRate = *rec.FTPRate
	}
	if rec.DiscountRate != nil {
		in.DiscountRate = *rec.DiscountRate
	}

	res, err := pricing.Evaluate(rec.Loan, in)
	return Outcome{Record: rec, Result: res, Err: err}
}
