package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/billtally/billtally/pkg/config"
	"github.com/billtally/billtally/pkg/db"
)

var statsUser string

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display ledger statistics",
	Long: `Display statistics about a user's derived ledger.

Shows:
- Total number of ledger entries
- Entries derived from bills
- Debit and credit totals
- Last entry date
- Entry counts per category

Example:
  bill-tally stats --user u1`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsUser, "user", "", "User ID (default from BILL_TALLY_USER)")
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if statsUser == "" {
		statsUser = cfg.UserID
	}
	if statsUser == "" {
		exitOnError(fmt.Errorf("no user ID given (use --user or BILL_TALLY_USER)"), "invalid arguments")
	}

	if err := cfg.Validate("database.path"); err != nil {
		exitOnError(err, "invalid configuration")
	}

	slog.Debug("Opening database", "path", cfg.Database.Path)
	conn, err := db.Open(cfg.Database.Path)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	ledgerStore := db.NewLedgerStore(conn)

	stats, err := ledgerStore.GetStats(statsUser)
	exitOnError(err, "failed to get statistics")

	txnCount, err := db.NewBankTransactionStore(conn).CountTransactions(statsUser)
	exitOnError(err, "failed to count bank transactions")

	fmt.Println("\n=== Ledger Statistics ===")
	fmt.Printf("Total entries:       %d\n", stats.TotalEntries)
	fmt.Printf("From bills:          %d\n", stats.BillEntries)
	fmt.Printf("Bank transactions:   %d\n", txnCount)
	fmt.Printf("Total debit:         %.2f\n", stats.TotalDebit)
	fmt.Printf("Total credit:        %.2f\n", stats.TotalCredit)

	if stats.LastEntryDate.Valid {
		fmt.Printf("Last entry date:     %s\n", stats.LastEntryDate.String)
	} else {
		fmt.Printf("Last entry date:     (none)\n")
	}

	counts, err := ledgerStore.CountByCategory(statsUser)
	exitOnError(err, "failed to count entries by category")

	if len(counts) > 0 {
		fmt.Println("\nEntries by category:")
		for _, cc := range counts {
			fmt.Printf("  %-25s %d\n", cc.Category, cc.Count)
		}
	}

	fmt.Println()
}
