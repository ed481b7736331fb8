// Package cmd provides CLI commands for bill-tally.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/billtally/billtally/pkg/chart"
	"github.com/billtally/billtally/pkg/config"
	"github.com/billtally/billtally/pkg/ledger"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bill-tally",
	Short: "Derive double-entry ledgers from bills and bank statements",
	Long: `bill-tally is a CLI bookkeeping tool for small businesses.

It supports:
- Recording bills manually or extracting them from images
- Importing bank statement CSV exports
- Deriving balanced double-entry ledger rows per document
- Re-deriving ledgers for all historical bills of a user

Example:
  bill-tally add-bill --vendor "ABC Traders" --number INV-001 --total 1180 --user u1
  bill-tally import-statement statement.csv --user u1
  bill-tally migrate --user u1`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(addBillCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(importStatementCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(statsCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}

// loadChart loads the account label chart named in the configuration,
// or the built-in labels when none is configured.
func loadChart(cfg *config.Config) (*chart.Chart, error) {
	path := cfg.ChartPath()
	if path == "" {
		return chart.Default(), nil
	}
	return chart.Load(path)
}

// printEntries renders derived ledger entries for dry runs and command
// output.
func printEntries(entries []ledger.Entry) {
	for _, e := range entries {
		side := "Dr"
		amount := e.DebitAmount
		if e.CreditAmount > 0 {
			side = "Cr"
			amount = e.CreditAmount
		}
		fmt.Printf("  %s  %-40s %s %10.2f  [%s]  %s\n",
			e.Date, e.AccountName, side, amount, e.Category, e.Description)
	}
}
