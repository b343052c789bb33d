package cmd

import (
	"context"
	"fmt"

	"github.com/rustyeddy/raroc/batch"
	"github.com/rustyeddy/raroc/cashflow"
	"github.com/rustyeddy/raroc/config"
	"github.com/rustyeddy/raroc/journal"
	"github.com/rustyeddy/raroc/loan"
	"github.com/rustyeddy/raroc/pricing"
	"github.com/rustyeddy/raroc/risk"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Price a CSV of loans in parallel",
	Long: `Price every loan in a CSV file and journal the results.

Input columns: id, principal, annual_rate, term, pd_rating, lgd_grade,
plus optional frequency, ftp_rate, discount_rate, nii, nii_months, nie,
ead, reference. Missing optional values use the config defaults.

Records are evaluated in parallel; output order always matches input
order. Rows that fail to price are journaled with their error instead
of halting the batch.

Example:
  raroc batch --input loans.csv --config pricing.yaml`,
	RunE: runBatch,
}

var (
	batchInput   string
	batchConfig  string
	batchWorkers int
)

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "path to loans CSV (required)")
	batchCmd.Flags().StringVarP(&batchConfig, "config", "f", "", "path to config file (YAML or JSON)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "worker count override (0 = config, then NumCPU)")
	batchCmd.MarkFlagRequired("input")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadOrDefault(batchConfig)
	if err != nil {
		return err
	}

	src, err := batch.OpenCSV(batchInput)
	if err != nil {
		return err
	}

	var j journal.Journal
	if cfg.Journal.Type == "csv" {
		j, err = journal.NewCSV(cfg.Journal.ResultsFile, cfg.Journal.SchedulesFile)
	} else {
		j, err = journal.NewSQLite(cfg.Journal.DBPath)
	}
	if err != nil {
		src.Close()
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	workers := cfg.Batch.Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}

	runner := &batch.Runner{
		Source:   &defaultingSource{src: src, fees: cfg.Fees},
		Defaults: batch.Defaults{
			FTPRate:      cfg.Pricing.FTPRate,
			DiscountRate: cfg.Pricing.DiscountRate,
			Capital:      risk.CapitalPolicy{ULMultiplier: cfg.Capital.ULMultiplier},
			Discount:     pricing.DiscountOptions{FromPeriodZero: cfg.Pricing.DiscountFromZero},
		},
		Workers: workers,
	}

	run, err := runner.Run(context.Background())
	if err != nil {
		return fmt.Errorf("batch run: %w", err)
	}

	priced, failed := 0, 0
	for _, o := range run.Outcomes {
		rec := journal.ResultRecord{
			RunID:     run.RunID,
			LoanID:    o.Record.ID,
			Reference: o.Record.Reference,
		}
		if o.Err != nil {
			rec.Error = o.Err.Error()
			failed++
		} else {
			rec.PVNetIncome = o.Result.PVNetIncome
			rec.ExpectedLoss = o.Result.ExpectedLoss
			rec.EconomicCapital = o.Result.EconomicCapital
			rec.RAROC = o.Result.RAROC
			priced++
		}
		if err := j.RecordResult(rec); err != nil {
			return fmt.Errorf("record result %s: %w", o.Record.ID, err)
		}

		if o.Err == nil && cfg.Journal.Schedules {
			if err := journalSchedule(j, run.RunID, o, cfg); err != nil {
				return fmt.Errorf("record schedule %s: %w", o.Record.ID, err)
			}
		}
	}

	fmt.Printf("Run %s: %d loans priced, %d failed\n", run.RunID, priced, failed)
	if cfg.Journal.Type == "csv" {
		fmt.Printf("Results saved to: %s\n", cfg.Journal.ResultsFile)
		if cfg.Journal.Schedules {
			fmt.Printf("Schedules saved to: %s\n", cfg.Journal.SchedulesFile)
		}
	} else {
		fmt.Printf("Results saved to: %s\n", cfg.Journal.DBPath)
	}
	return nil
}

// journalSchedule rebuilds the priced loan's cash flow detail and
// writes one row per period.
func journalSchedule(j journal.Journal, runID string, o batch.Outcome, cfg *config.Config) error {
	l := o.Record.Loan

	sched, err := loan.Amortize(l)
	if err != nil {
		return err
	}

	ftp := cfg.Pricing.FTPRate
	if o.Record.FTPRate != nil {
		ftp = *o.Record.FTPRate
	}
	d := cfg.Pricing.DiscountRate
	if o.Record.DiscountRate != nil {
		d = *o.Record.DiscountRate
	}
	periods := float64(l.PeriodsPerYear())

	lines, err := cashflow.Build(sched, cashflow.Inputs{
		FTPRate:            ftp / periods,
		NonInterestIncome:  o.Record.NonInterestIncome,
		NonInterestExpense: o.Record.NonInterestExpense,
	})
	if err != nil {
		return err
	}

	for i, e := range sched {
		line := lines[i]
		row := journal.ScheduleRow{
			RunID:              runID,
			LoanID:             o.Record.ID,
			Period:             e.Period,
			Payment:            e.Payment,
			Interest:           e.Interest,
			Principal:          e.Principal,
			Balance:            e.Balance,
			InterestIncome:     line.InterestIncome,
			InterestExpense:    line.InterestExpense,
			NonInterestIncome:  line.NonInterestIncome,
			NonInterestExpense: line.NonInterestExpense,
			Net:                line.Net,
			DiscountFactor:     pricing.DiscountFactor(d/periods, e.Period),
		}
		if err := j.RecordSchedule(row); err != nil {
			return err
		}
	}
	return nil
}

// defaultingSource fills config-level default fee streams into records
// that carry none of their own.
type defaultingSource struct {
	src  batch.Source
	fees config.FeesConfig
}

func (d *defaultingSource) Next() (batch.Record, bool, error) {
	rec, ok, err := d.src.Next()
	if err != nil || !ok {
		return rec, ok, err
	}

	if rec.NonInterestIncome == nil && d.fees.NonInterestIncome != 0 {
		if d.fees.NIIMonths > 0 {
			rec.NonInterestIncome = cashflow.FlatStreamUntil(d.fees.NonInterestIncome, d.fees.NIIMonths, rec.Loan.Term)
		} else {
			rec.NonInterestIncome = cashflow.Flat(d.fees.NonInterestIncome)
		}
	}
	if rec.NonInterestExpense == nil && d.fees.NonInterestExpense != 0 {
		rec.NonInterestExpense = cashflow.Flat(d.fees.NonInterestExpense)
	}
	return rec, true, nil
}

func (d *defaultingSource) Close() error { return d.src.Close() }
