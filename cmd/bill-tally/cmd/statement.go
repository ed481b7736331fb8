package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/billtally/billtally/pkg/config"
	"github.com/billtally/billtally/pkg/db"
	"github.com/billtally/billtally/pkg/ledger"
	"github.com/billtally/billtally/pkg/statement"
)

var (
	importUser   string
	importDryRun bool
)

// importStatementCmd represents the import-statement command.
var importStatementCmd = &cobra.Command{
	Use:   "import-statement <file.csv>",
	Short: "Import a bank statement and derive its ledger entries",
	Long: `Parse a bank statement CSV export, store its transactions and derive
the mirrored ledger entry pair for each one.

Expected columns: date, description, debit, credit, reference, balance.
The first row is treated as a header.

Example:
  bill-tally import-statement statement.csv --user u1
  bill-tally import-statement statement.csv --user u1 --dry-run`,
	Args: cobra.ExactArgs(1),
	Run:  runImportStatement,
}

func init() {
	importStatementCmd.Flags().StringVar(&importUser, "user", "", "User ID (default from BILL_TALLY_USER)")
	importStatementCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Print derived entries without writing")
}

func runImportStatement(cmd *cobra.Command, args []string) {
	statementPath := args[0]

	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if importUser == "" {
		importUser = cfg.UserID
	}
	if importUser == "" {
		exitOnError(fmt.Errorf("no user ID given (use --user or BILL_TALLY_USER)"), "invalid arguments")
	}

	if err := cfg.Validate("database.path"); err != nil {
		exitOnError(err, "invalid configuration")
	}

	slog.Info("Parsing bank statement", "path", statementPath, "dry_run", importDryRun)
	txns, err := statement.Parse(statementPath, importUser)
	exitOnError(err, "failed to parse statement")
	slog.Info("Parsed transactions", "count", len(txns))

	if len(txns) == 0 {
		fmt.Println("No transactions in statement")
		return
	}

	if importDryRun {
		fmt.Printf("[DRY RUN] Would import %d transactions:\n", len(txns))
		for _, txn := range txns {
			printEntries(ledger.TransactionEntries(txn))
		}
		return
	}

	conn, err := db.Open(cfg.Database.Path)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	txnStore := db.NewBankTransactionStore(conn)
	svc := ledger.NewService(db.NewBillStore(conn), db.NewLedgerStore(conn), nil)

	imported := 0
	failed := 0
	for _, txn := range txns {
		txnID, err := txnStore.InsertTransaction(&txn)
		if err != nil {
			slog.Error("Failed to store transaction", "date", txn.TransactionDate, "description", txn.Description, "error", err)
			failed++
			continue
		}

		if _, err := svc.RecordBankTransaction(txn); err != nil {
			slog.Error("Failed to derive transaction entries", "transaction_id", txnID, "error", err)
			failed++
			continue
		}

		imported++
	}

	fmt.Printf("Imported %d of %d transactions", imported, len(txns))
	if failed > 0 {
		fmt.Printf(" (%d failed)", failed)
	}
	fmt.Println()
}
