package ledger

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

func TestBillEntries_WithGST(t *testing.T) {
	bill := Bill{
		ID:          "bill-1",
		UserID:      "user-1",
		VendorName:  "Sharma Hardware",
		BillNumber:  "INV-042",
		BillType:    BillTypePurchase,
		BillDate:    "2024-03-15",
		TotalAmount: 1180,
		TaxAmount:   180,
		CGST:        90,
		SGST:        90,
		IGST:        0,
		Description: "hardware fittings",
	}

	entries := BillEntries(bill, nil)

	if len(entries) != 4 {
		t.Fatalf("BillEntries() returned %d entries, expected 4", len(entries))
	}

	payable := entries[0]
	if payable.Category != AccountsPayable {
		t.Errorf("entry 0 category = %q, expected %q", payable.Category, AccountsPayable)
	}
	if !almostEqual(payable.CreditAmount, 1180) || payable.DebitAmount != 0 {
		t.Errorf("payable entry amounts = debit %v / credit %v, expected 0 / 1180", payable.DebitAmount, payable.CreditAmount)
	}
	if payable.AccountName != "Sharma Hardware - purchase" {
		t.Errorf("payable account name = %q", payable.AccountName)
	}
	if payable.Description != "Bill INV-042 - hardware fittings" {
		t.Errorf("payable description = %q", payable.Description)
	}

	expense := entries[1]
	if expense.Category != MaterialExpense {
		t.Errorf("entry 1 category = %q, expected %q", expense.Category, MaterialExpense)
	}
	if !almostEqual(expense.DebitAmount, 1000) || expense.CreditAmount != 0 {
		t.Errorf("expense entry amounts = debit %v / credit %v, expected 1000 / 0", expense.DebitAmount, expense.CreditAmount)
	}
	if expense.AccountName != "MATERIAL EXPENSE" {
		t.Errorf("expense account name = %q, expected %q", expense.AccountName, "MATERIAL EXPENSE")
	}
	if expense.Description != "Sharma Hardware - hardware fittings" {
		t.Errorf("expense description = %q", expense.Description)
	}

	cgst := entries[2]
	if cgst.Category != CGSTReceivable || !almostEqual(cgst.DebitAmount, 90) {
		t.Errorf("entry 2 = %q debit %v, expected cgst_receivable debit 90", cgst.Category, cgst.DebitAmount)
	}
	if cgst.AccountName != "CGST Receivable" {
		t.Errorf("cgst account name = %q", cgst.AccountName)
	}
	if cgst.Description != "CGST on Bill INV-042" {
		t.Errorf("cgst description = %q", cgst.Description)
	}

	sgst := entries[3]
	if sgst.Category != SGSTReceivable || !almostEqual(sgst.DebitAmount, 90) {
		t.Errorf("entry 3 = %q debit %v, expected sgst_receivable debit 90", sgst.Category, sgst.DebitAmount)
	}

	debit, credit := Balance(entries)
	if !almostEqual(debit, 1180) || !almostEqual(credit, 1180) {
		t.Errorf("Balance() = debit %v / credit %v, expected 1180 / 1180", debit, credit)
	}
	if !IsBalanced(entries) {
		t.Error("IsBalanced() = false for a consistent tax breakdown")
	}

	for i, e := range entries {
		if e.BillID != "bill-1" {
			t.Errorf("entry %d bill ID = %q, expected bill-1", i, e.BillID)
		}
		if e.Date != "2024-03-15" {
			t.Errorf("entry %d date = %q, expected 2024-03-15", i, e.Date)
		}
		if e.DebitAmount > 0 && e.CreditAmount > 0 {
			t.Errorf("entry %d carries both debit and credit", i)
		}
	}
}

func TestBillEntries_NoTax(t *testing.T) {
	bill := Bill{
		ID:          "bill-2",
		UserID:      "user-1",
		VendorName:  "City Rentals",
		BillNumber:  "R-9",
		BillType:    BillTypeExpense,
		BillDate:    "2024-04-01",
		TotalAmount: 5000,
		Description: "shop rent april",
	}

	entries := BillEntries(bill, nil)

	if len(entries) != 2 {
		t.Fatalf("BillEntries() returned %d entries, expected 2 without GST", len(entries))
	}
	if entries[1].Category != RentExpense {
		t.Errorf("expense category = %q, expected %q", entries[1].Category, RentExpense)
	}
	// tax_amount defaults to zero, so the expense debit equals the total.
	if !almostEqual(entries[1].DebitAmount, 5000) {
		t.Errorf("expense debit = %v, expected 5000", entries[1].DebitAmount)
	}
	if !IsBalanced(entries) {
		t.Error("IsBalanced() = false for a bill without tax")
	}
}

func TestBillEntries_ClassifiesVendorWhenDescriptionEmpty(t *testing.T) {
	bill := Bill{
		ID:          "bill-3",
		UserID:      "user-1",
		VendorName:  "Apex Construction Co",
		BillNumber:  "A-1",
		BillType:    BillTypePurchase,
		BillDate:    "2024-05-10",
		TotalAmount: 900,
	}

	entries := BillEntries(bill, nil)
	if entries[1].Category != ConstructionExpense {
		t.Errorf("category = %q, expected vendor-based %q", entries[1].Category, ConstructionExpense)
	}
}

// The deriver never reconciles tax_amount against the GST breakdown;
// inconsistent input produces an unbalanced document. This documents
// the gap rather than fixing it.
func TestBillEntries_InconsistentTaxBreakdown(t *testing.T) {
	bill := Bill{
		ID:          "bill-4",
		UserID:      "user-1",
		VendorName:  "Vendor",
		BillNumber:  "V-1",
		BillType:    BillTypePurchase,
		BillDate:    "2024-06-01",
		TotalAmount: 1180,
		TaxAmount:   100, // disagrees with cgst+sgst = 180
		CGST:        90,
		SGST:        90,
	}

	entries := BillEntries(bill, nil)

	debit, credit := Balance(entries)
	if !almostEqual(debit, 1260) {
		t.Errorf("total debit = %v, expected 1260 (1080 expense + 180 GST)", debit)
	}
	if !almostEqual(credit, 1180) {
		t.Errorf("total credit = %v, expected 1180", credit)
	}
	if IsBalanced(entries) {
		t.Error("IsBalanced() = true, expected the inconsistent breakdown to stay unbalanced")
	}
}

func TestTransactionEntries_Payment(t *testing.T) {
	txn := BankTransaction{
		UserID:          "user-1",
		TransactionDate: "2024-03-20",
		Description:     "HP PETROL PUMP MUMBAI",
		DebitAmount:     2500,
		CreditAmount:    0,
	}

	entries := TransactionEntries(txn)

	if len(entries) != 2 {
		t.Fatalf("TransactionEntries() returned %d entries, expected 2", len(entries))
	}

	primary := entries[0]
	if primary.PartyName != "HP PETROL" {
		t.Errorf("primary party = %q, expected %q", primary.PartyName, "HP PETROL")
	}
	if primary.Category != TravelExpense {
		t.Errorf("primary category = %q, expected %q", primary.Category, TravelExpense)
	}
	if primary.AccountName != "HP PETROL PUMP MUMBAI" {
		t.Errorf("primary account name = %q", primary.AccountName)
	}
	if !almostEqual(primary.DebitAmount, 2500) || primary.CreditAmount != 0 {
		t.Errorf("primary amounts = debit %v / credit %v", primary.DebitAmount, primary.CreditAmount)
	}

	mirror := entries[1]
	if mirror.PartyName != "Bank Account" || mirror.AccountName != "Current Account" {
		t.Errorf("mirror party/account = %q / %q", mirror.PartyName, mirror.AccountName)
	}
	if mirror.Category != Bank {
		t.Errorf("mirror category = %q, expected %q", mirror.Category, Bank)
	}
	if mirror.DebitAmount != 0 || !almostEqual(mirror.CreditAmount, 2500) {
		t.Errorf("mirror amounts = debit %v / credit %v, expected 0 / 2500", mirror.DebitAmount, mirror.CreditAmount)
	}
	if mirror.Description != "Bank Payment - HP PETROL PUMP MUMBAI" {
		t.Errorf("mirror description = %q", mirror.Description)
	}

	if !IsBalanced(entries) {
		t.Error("IsBalanced() = false, the mirrored pair must balance by construction")
	}
}

func TestTransactionEntries_Receipt(t *testing.T) {
	txn := BankTransaction{
		UserID:          "user-1",
		TransactionDate: "2024-03-21",
		Description:     "NEFT payment received ACME",
		DebitAmount:     0,
		CreditAmount:    50000,
	}

	entries := TransactionEntries(txn)

	if entries[0].Category != SalesIncome {
		t.Errorf("primary category = %q, expected %q", entries[0].Category, SalesIncome)
	}
	if entries[1].Description != "Bank Receipt - NEFT payment received ACME" {
		t.Errorf("mirror description = %q", entries[1].Description)
	}
	if !almostEqual(entries[1].DebitAmount, 50000) || entries[1].CreditAmount != 0 {
		t.Errorf("mirror amounts = debit %v / credit %v, expected 50000 / 0", entries[1].DebitAmount, entries[1].CreditAmount)
	}
	if !IsBalanced(entries) {
		t.Error("IsBalanced() = false for a credit transaction pair")
	}
}
