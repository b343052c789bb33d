package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "raroc",
	Short: "A RAROC pricing engine for commercial term loans",
	Long: `Raroc prices commercial term loans on a risk-adjusted basis.

It provides tools for:
  - Building level-payment amortization schedules
  - Projecting interest, FTP funding cost, and fee cash flows
  - Discounting net cash flows to present value
  - Expected loss and economic capital from PD/LGD rating scales
  - Batch pricing of loan portfolios from CSV, in parallel
  - Journaling results to CSV or SQLite

Complete documentation is available at https://github.com/rustyeddy/raroc`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
