package ledger

import (
	"fmt"
	"math"

	"github.com/billtally/billtally/pkg/chart"
)

// balanceTolerance absorbs float rounding when netting debits against
// credits; amounts are currency values with two decimal places.
const balanceTolerance = 0.005

// BillEntries derives the ledger entries for one bill:
//
//  1. an accounts_payable credit for the full bill amount,
//  2. an expense/income debit for the amount net of tax, categorized by
//     the classifier over the description (vendor name when empty),
//  3. a receivable debit per nonzero GST component (CGST, SGST, IGST).
//
// The expense debit uses total_amount - tax_amount while the GST
// entries come from the separate cgst/sgst/igst fields; when the caller
// supplies a tax breakdown that does not sum to tax_amount the result
// does not balance. That inconsistency is reported by the caller via
// IsBalanced, not repaired here.
func BillEntries(bill Bill, labels *chart.Chart) []Entry {
	desc := bill.Description
	if desc == "" {
		desc = bill.VendorName
	}
	category := Classify(desc)

	entries := []Entry{
		{
			UserID:       bill.UserID,
			BillID:       bill.ID,
			PartyName:    bill.VendorName,
			AccountName:  fmt.Sprintf("%s - %s", bill.VendorName, bill.BillType),
			Category:     AccountsPayable,
			DebitAmount:  0,
			CreditAmount: bill.TotalAmount,
			Description:  fmt.Sprintf("Bill %s - %s", bill.BillNumber, bill.Description),
			Date:         bill.BillDate,
		},
		{
			UserID:       bill.UserID,
			BillID:       bill.ID,
			PartyName:    bill.VendorName,
			AccountName:  labels.Label(string(category)),
			Category:     category,
			DebitAmount:  bill.TotalAmount - bill.TaxAmount,
			CreditAmount: 0,
			Description:  fmt.Sprintf("%s - %s", bill.VendorName, bill.Description),
			Date:         bill.BillDate,
		},
	}

	if bill.CGST > 0 {
		entries = append(entries, Entry{
			UserID:      bill.UserID,
			BillID:      bill.ID,
			PartyName:   bill.VendorName,
			AccountName: "CGST Receivable",
			Category:    CGSTReceivable,
			DebitAmount: bill.CGST,
			Description: fmt.Sprintf("CGST on Bill %s", bill.BillNumber),
			Date:        bill.BillDate,
		})
	}

	if bill.SGST > 0 {
		entries = append(entries, Entry{
			UserID:      bill.UserID,
			BillID:      bill.ID,
			PartyName:   bill.VendorName,
			AccountName: "SGST Receivable",
			Category:    SGSTReceivable,
			DebitAmount: bill.SGST,
			Description: fmt.Sprintf("SGST on Bill %s", bill.BillNumber),
			Date:        bill.BillDate,
		})
	}

	if bill.IGST > 0 {
		entries = append(entries, Entry{
			UserID:      bill.UserID,
			BillID:      bill.ID,
			PartyName:   bill.VendorName,
			AccountName: "IGST Receivable",
			Category:    IGSTReceivable,
			DebitAmount: bill.IGST,
			Description: fmt.Sprintf("IGST on Bill %s", bill.BillNumber),
			Date:        bill.BillDate,
		})
	}

	return entries
}

// TransactionEntries derives the entry pair for one bank transaction:
// the primary entry carrying the transaction's own debit/credit, and a
// bank-account mirror with the amounts swapped. The pair balances by
// construction.
func TransactionEntries(txn BankTransaction) []Entry {
	side := "Receipt"
	if txn.DebitAmount > 0 {
		side = "Payment"
	}

	return []Entry{
		{
			UserID:       txn.UserID,
			PartyName:    ExtractPartyName(txn.Description),
			AccountName:  txn.Description,
			Category:     Classify(txn.Description),
			DebitAmount:  txn.DebitAmount,
			CreditAmount: txn.CreditAmount,
			Description:  txn.Description,
			Date:         txn.TransactionDate,
		},
		{
			UserID:       txn.UserID,
			PartyName:    "Bank Account",
			AccountName:  "Current Account",
			Category:     Bank,
			DebitAmount:  txn.CreditAmount,
			CreditAmount: txn.DebitAmount,
			Description:  fmt.Sprintf("Bank %s - %s", side, txn.Description),
			Date:         txn.TransactionDate,
		},
	}
}

// Balance returns the total debit and credit amounts across entries.
func Balance(entries []Entry) (debit, credit float64) {
	for _, e := range entries {
		debit += e.DebitAmount
		credit += e.CreditAmount
	}
	return debit, credit
}

// IsBalanced reports whether the entries net to zero, i.e. the source
// document they were derived from balances.
func IsBalanced(entries []Entry) bool {
	debit, credit := Balance(entries)
	return math.Abs(debit-credit) < balanceTolerance
}
