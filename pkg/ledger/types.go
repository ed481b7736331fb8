package ledger

// BillType classifies the commercial nature of a bill.
type BillType string

const (
	BillTypePurchase BillType = "purchase"
	BillTypeSales    BillType = "sales"
	BillTypeExpense  BillType = "expense"
	BillTypeReturn   BillType = "return"
)

// Bill is an uploaded bill or invoice. Bills are created outside the
// derivation core (manually or by the extraction service) and are
// immutable input here.
type Bill struct {
	ID          string
	UserID      string
	VendorName  string
	BillNumber  string
	BillType    BillType
	BillDate    string // YYYY-MM-DD
	TotalAmount float64
	TaxAmount   float64
	CGST        float64
	SGST        float64
	IGST        float64
	Description string
}

// BankTransaction is one line of an imported bank statement.
// Conventionally at most one of DebitAmount/CreditAmount is nonzero.
type BankTransaction struct {
	ID              string
	UserID          string
	TransactionDate string // YYYY-MM-DD
	Description     string
	DebitAmount     float64
	CreditAmount    float64
	ReferenceNumber string
	Balance         float64
}

// Entry is one derived ledger row: a debit or credit amount against an
// account and category. Entries derived from one source document must
// balance (total debits == total credits). An entry never carries both
// a nonzero debit and a nonzero credit; splits go on separate rows.
type Entry struct {
	ID           string
	UserID       string
	BillID       string // empty when not derived from a bill
	PartyName    string
	AccountName  string
	Category     Category
	DebitAmount  float64
	CreditAmount float64
	Description  string
	Date         string // YYYY-MM-DD
}
