package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/billtally/billtally/pkg/config"
	"github.com/billtally/billtally/pkg/db"
	"github.com/billtally/billtally/pkg/ledger"
)

var (
	deriveBillID string
	deriveDryRun bool
)

// deriveCmd represents the derive command.
var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive ledger entries for one stored bill",
	Long: `Derive and persist double-entry ledger rows for a stored bill.

The bill is re-fetched from the database, classified by its description,
and turned into a payable credit, an expense debit and per-component GST
receivable debits.

Example:
  bill-tally derive --bill 6f1c...
  bill-tally derive --bill 6f1c... --dry-run`,
	Run: runDerive,
}

func init() {
	deriveCmd.Flags().StringVar(&deriveBillID, "bill", "", "Bill ID to derive (required)")
	deriveCmd.Flags().BoolVar(&deriveDryRun, "dry-run", false, "Print derived entries without writing")

	deriveCmd.MarkFlagRequired("bill")
}

func runDerive(cmd *cobra.Command, args []string) {
	slog.Info("Deriving bill entries", "bill_id", deriveBillID, "dry_run", deriveDryRun)

	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if err := cfg.Validate("database.path"); err != nil {
		exitOnError(err, "invalid configuration")
	}

	labels, err := loadChart(cfg)
	exitOnError(err, "failed to load account chart")

	conn, err := db.Open(cfg.Database.Path)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	bills := db.NewBillStore(conn)

	if deriveDryRun {
		bill, err := bills.GetBill(deriveBillID)
		exitOnError(err, "failed to fetch bill")

		entries := ledger.BillEntries(*bill, labels)
		fmt.Printf("[DRY RUN] Would insert %d entries for bill %s:\n", len(entries), bill.ID)
		printEntries(entries)
		return
	}

	svc := ledger.NewService(bills, db.NewLedgerStore(conn), labels)

	entries, err := svc.DeriveBill(deriveBillID)
	exitOnError(err, "failed to derive bill")

	fmt.Printf("Inserted %d ledger entries for bill %s:\n", len(entries), deriveBillID)
	printEntries(entries)
}
