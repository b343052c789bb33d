package cmd

import (
	"fmt"

	"github.com/rustyeddy/raroc/loan"
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the amortization schedule for one loan",
	Long: `Build and print the level-payment amortization schedule.

Example:
  raroc schedule --principal 100000 --rate 0.06 --term 12`,
	RunE: runSchedule,
}

var (
	schedPrincipal float64
	schedRate      float64
	schedTerm      int
	schedFrequency int
)

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().Float64Var(&schedPrincipal, "principal", 0, "original balance (required)")
	scheduleCmd.Flags().Float64Var(&schedRate, "rate", 0, "annual interest rate as a fraction (required)")
	scheduleCmd.Flags().IntVar(&schedTerm, "term", 0, "term in payment periods (required)")
	scheduleCmd.Flags().IntVar(&schedFrequency, "frequency", 12, "payments per year")

	scheduleCmd.MarkFlagRequired("principal")
	scheduleCmd.MarkFlagRequired("rate")
	scheduleCmd.MarkFlagRequired("term")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	l := loan.Loan{
		Principal:  schedPrincipal,
		AnnualRate: schedRate,
		Term:       schedTerm,
		Frequency:  schedFrequency,
	}

	sched, err := loan.Amortize(l)
	if err != nil {
		return err
	}

	fmt.Printf("%6s %14s %14s %14s %14s %14s\n",
		"Period", "Begin Balance", "Payment", "Interest", "Principal", "End Balance")
	for _, e := range sched {
		fmt.Printf("%6d %14.2f %14.2f %14.2f %14.2f %14.2f\n",
			e.Period, e.BeginBalance, e.Payment, e.Interest, e.Principal, e.Balance)
	}

	fmt.Printf("\nTotal interest: $%.2f over %d periods\n", sched.TotalInterest(), len(sched))
	return nil
}
