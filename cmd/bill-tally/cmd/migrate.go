package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/billtally/billtally/pkg/config"
	"github.com/billtally/billtally/pkg/db"
	"github.com/billtally/billtally/pkg/ledger"
)

var migrateUser string

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Re-derive ledger entries for all of a user's bills",
	Long: `Re-derive ledger entries for every bill owned by a user, oldest
first. Bills that fail are reported and skipped; the sweep continues.

Warning: the sweep does not check for existing entries, so running it
against bills that already have ledgers inserts duplicates.

Example:
  bill-tally migrate --user u1`,
	Run: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateUser, "user", "", "User ID (default from BILL_TALLY_USER)")
}

func runMigrate(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if migrateUser == "" {
		migrateUser = cfg.UserID
	}
	if migrateUser == "" {
		exitOnError(fmt.Errorf("no user ID given (use --user or BILL_TALLY_USER)"), "invalid arguments")
	}

	if err := cfg.Validate("database.path"); err != nil {
		exitOnError(err, "invalid configuration")
	}

	labels, err := loadChart(cfg)
	exitOnError(err, "failed to load account chart")

	conn, err := db.Open(cfg.Database.Path)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	ledgerStore := db.NewLedgerStore(conn)
	svc := ledger.NewService(db.NewBillStore(conn), ledgerStore, labels)

	slog.Info("Starting migration", "user_id", migrateUser)
	report, err := svc.MigrateExistingBills(migrateUser)
	exitOnError(err, "failed to migrate bills")

	fmt.Println("\n=== Migration Report ===")
	fmt.Printf("Bills migrated: %d\n", report.Count())
	fmt.Printf("Bills failed:   %d\n", len(report.Failed))
	for _, f := range report.Failed {
		fmt.Printf("  %s: %v\n", f.BillID, f.Err)
	}

	stats, err := ledgerStore.GetStats(migrateUser)
	if err == nil {
		fmt.Println("\n=== Ledger Statistics ===")
		fmt.Printf("Total entries:  %d\n", stats.TotalEntries)
		fmt.Printf("Total debit:    %.2f\n", stats.TotalDebit)
		fmt.Printf("Total credit:   %.2f\n", stats.TotalCredit)
	}
	fmt.Println()
}
