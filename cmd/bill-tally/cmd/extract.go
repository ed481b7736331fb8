package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/billtally/billtally/pkg/config"
	"github.com/billtally/billtally/pkg/db"
	"github.com/billtally/billtally/pkg/extract"
	"github.com/billtally/billtally/pkg/ledger"
)

var (
	extractUser   string
	extractType   string
	extractDryRun bool
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a bill from an image and derive its ledger entries",
	Long: `Send a bill image to the Gemini extraction service, store the
extracted bill and derive its ledger entries.

Supported image formats: JPEG, PNG, WebP.

Example:
  bill-tally extract bill.jpg --user u1
  bill-tally extract bill.png --user u1 --type expense --dry-run`,
	Args: cobra.ExactArgs(1),
	Run:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractUser, "user", "", "User ID (default from BILL_TALLY_USER)")
	extractCmd.Flags().StringVar(&extractType, "type", "purchase", "Bill type (purchase|sales|expense|return)")
	extractCmd.Flags().BoolVar(&extractDryRun, "dry-run", false, "Print extracted bill and entries without writing")
}

func runExtract(cmd *cobra.Command, args []string) {
	imagePath := args[0]

	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if extractUser == "" {
		extractUser = cfg.UserID
	}
	if extractUser == "" {
		exitOnError(fmt.Errorf("no user ID given (use --user or BILL_TALLY_USER)"), "invalid arguments")
	}

	if err := cfg.Validate("database.path", "gemini.apiKey"); err != nil {
		exitOnError(err, "invalid configuration")
	}

	mimeType, err := imageMimeType(imagePath)
	exitOnError(err, "unsupported image")

	imageData, err := os.ReadFile(imagePath)
	exitOnError(err, "failed to read image")

	labels, err := loadChart(cfg)
	exitOnError(err, "failed to load account chart")

	client := extract.NewClient(extract.ClientConfig{
		APIURL:  cfg.Gemini.APIURL,
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: 60 * time.Second,
	})

	slog.Info("Extracting bill from image", "path", imagePath, "mime_type", mimeType)
	extracted, err := client.ExtractBill(imageData, mimeType)
	exitOnError(err, "failed to extract bill")

	bill := extracted.ToBill(extractUser, ledger.BillType(extractType))

	fmt.Printf("Extracted bill %s from %s:\n", bill.BillNumber, bill.VendorName)
	fmt.Printf("  date %s  total %.2f  tax %.2f (cgst %.2f sgst %.2f igst %.2f)\n",
		bill.BillDate, bill.TotalAmount, bill.TaxAmount, bill.CGST, bill.SGST, bill.IGST)

	if extractDryRun {
		entries := ledger.BillEntries(bill, labels)
		fmt.Printf("[DRY RUN] Would insert bill and %d entries:\n", len(entries))
		printEntries(entries)
		return
	}

	conn, err := db.Open(cfg.Database.Path)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	bills := db.NewBillStore(conn)

	billID, err := bills.InsertBill(&bill)
	exitOnError(err, "failed to insert bill")

	svc := ledger.NewService(bills, db.NewLedgerStore(conn), labels)

	entries, err := svc.DeriveBill(billID)
	exitOnError(err, "failed to derive bill")

	fmt.Printf("Stored bill %s with %d ledger entries:\n", billID, len(entries))
	printEntries(entries)
}

// imageMimeType maps an image file extension to its MIME type.
func imageMimeType(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	case ".webp":
		return "image/webp", nil
	default:
		return "", fmt.Errorf("unsupported image extension %q (expected .jpg, .jpeg, .png or .webp)", filepath.Ext(path))
	}
}
