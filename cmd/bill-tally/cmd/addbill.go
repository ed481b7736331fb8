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
	addBillVendor      string
	addBillNumber      string
	addBillDate        string
	addBillType        string
	addBillTotal       float64
	addBillTax         float64
	addBillCGST        float64
	addBillSGST        float64
	addBillIGST        float64
	addBillDescription string
	addBillUser        string
	addBillDryRun      bool
)

// addBillCmd represents the add-bill command.
var addBillCmd = &cobra.Command{
	Use:   "add-bill",
	Short: "Record a bill and derive its ledger entries",
	Long: `Record a bill from flags and immediately derive its ledger entries.

Example:
  bill-tally add-bill --vendor "ABC Traders" --number INV-001 \
    --date 2024-01-15 --total 1180 --tax 180 --cgst 90 --sgst 90 \
    --description "office supplies" --user u1`,
	Run: runAddBill,
}

func init() {
	addBillCmd.Flags().StringVar(&addBillVendor, "vendor", "", "Vendor name (required)")
	addBillCmd.Flags().StringVar(&addBillNumber, "number", "", "Bill number (required)")
	addBillCmd.Flags().StringVar(&addBillDate, "date", "", "Bill date (YYYY-MM-DD) (required)")
	addBillCmd.Flags().StringVar(&addBillType, "type", "purchase", "Bill type (purchase|sales|expense|return)")
	addBillCmd.Flags().Float64Var(&addBillTotal, "total", 0, "Total amount (required)")
	addBillCmd.Flags().Float64Var(&addBillTax, "tax", 0, "Total tax amount")
	addBillCmd.Flags().Float64Var(&addBillCGST, "cgst", 0, "CGST component")
	addBillCmd.Flags().Float64Var(&addBillSGST, "sgst", 0, "SGST component")
	addBillCmd.Flags().Float64Var(&addBillIGST, "igst", 0, "IGST component")
	addBillCmd.Flags().StringVar(&addBillDescription, "description", "", "Bill description")
	addBillCmd.Flags().StringVar(&addBillUser, "user", "", "User ID (default from BILL_TALLY_USER)")
	addBillCmd.Flags().BoolVar(&addBillDryRun, "dry-run", false, "Print derived entries without writing")

	addBillCmd.MarkFlagRequired("vendor")
	addBillCmd.MarkFlagRequired("number")
	addBillCmd.MarkFlagRequired("date")
	addBillCmd.MarkFlagRequired("total")
}

func runAddBill(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if addBillUser == "" {
		addBillUser = cfg.UserID
	}
	if addBillUser == "" {
		exitOnError(fmt.Errorf("no user ID given (use --user or BILL_TALLY_USER)"), "invalid arguments")
	}

	if err := cfg.Validate("database.path"); err != nil {
		exitOnError(err, "invalid configuration")
	}

	labels, err := loadChart(cfg)
	exitOnError(err, "failed to load account chart")

	bill := ledger.Bill{
		UserID:      addBillUser,
		VendorName:  addBillVendor,
		BillNumber:  addBillNumber,
		BillType:    ledger.BillType(addBillType),
		BillDate:    addBillDate,
		TotalAmount: addBillTotal,
		TaxAmount:   addBillTax,
		CGST:        addBillCGST,
		SGST:        addBillSGST,
		IGST:        addBillIGST,
		Description: addBillDescription,
	}

	if addBillDryRun {
		entries := ledger.BillEntries(bill, labels)
		fmt.Printf("[DRY RUN] Would insert bill %s and %d entries:\n", bill.BillNumber, len(entries))
		printEntries(entries)
		return
	}

	conn, err := db.Open(cfg.Database.Path)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	bills := db.NewBillStore(conn)

	billID, err := bills.InsertBill(&bill)
	exitOnError(err, "failed to insert bill")
	slog.Info("Bill recorded", "bill_id", billID, "vendor", bill.VendorName)

	svc := ledger.NewService(bills, db.NewLedgerStore(conn), labels)

	entries, err := svc.DeriveBill(billID)
	exitOnError(err, "failed to derive bill")

	fmt.Printf("Recorded bill %s (%s) with %d ledger entries:\n", bill.BillNumber, billID, len(entries))
	printEntries(entries)
}
