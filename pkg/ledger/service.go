package ledger

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/billtally/billtally/pkg/chart"
)

// ErrBillNotFound is returned when a referenced bill does not exist at
// derivation time.
var ErrBillNotFound = errors.New("bill not found")

// BillSource reads stored bills. Implemented by db.BillStore.
type BillSource interface {
	// GetBill returns the bill or an error wrapping ErrBillNotFound.
	GetBill(id string) (*Bill, error)

	// ListBillIDs returns the IDs of all bills owned by the user.
	ListBillIDs(userID string) ([]string, error)
}

// EntrySink persists derived ledger entries as one batch.
// Implemented by db.LedgerStore.
type EntrySink interface {
	InsertEntries(entries []Entry) error
}

// Service wires the deriver to bill and ledger storage.
type Service struct {
	bills   BillSource
	entries EntrySink
	labels  *chart.Chart
}

// NewService creates a derivation service. labels may be nil to use
// the default account labels.
func NewService(bills BillSource, entries EntrySink, labels *chart.Chart) *Service {
	return &Service{
		bills:   bills,
		entries: entries,
		labels:  labels,
	}
}

// DeriveBill re-fetches the bill, derives its ledger entries and
// persists them as one batch. A missing bill or a rejected insert
// aborts and surfaces to the caller; derivation itself cannot fail.
func (s *Service) DeriveBill(billID string) ([]Entry, error) {
	bill, err := s.bills.GetBill(billID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bill %s: %w", billID, err)
	}

	entries := BillEntries(*bill, s.labels)

	// Known validation gap: tax_amount is not checked against
	// cgst+sgst+igst, so inconsistent input yields an unbalanced
	// document. Report it and persist anyway.
	if !IsBalanced(entries) {
		debit, credit := Balance(entries)
		slog.Warn("derived entries do not balance; tax breakdown inconsistent with tax amount",
			"bill_id", bill.ID,
			"total_debit", debit,
			"total_credit", credit,
		)
	}

	if err := s.entries.InsertEntries(entries); err != nil {
		return nil, fmt.Errorf("failed to insert ledger entries for bill %s: %w", billID, err)
	}

	slog.Debug("derived bill entries", "bill_id", bill.ID, "entries", len(entries))
	return entries, nil
}

// RecordBankTransaction derives and persists the mirrored entry pair
// for one bank transaction. The transaction is supplied by the caller,
// already parsed from a statement.
func (s *Service) RecordBankTransaction(txn BankTransaction) ([]Entry, error) {
	entries := TransactionEntries(txn)
	if err := s.entries.InsertEntries(entries); err != nil {
		return nil, fmt.Errorf("failed to insert ledger entries for transaction %q: %w", txn.Description, err)
	}
	return entries, nil
}

// MigrationFailure records one bill the migration sweep could not derive.
type MigrationFailure struct {
	BillID string
	Err    error
}

// MigrationReport is the outcome of a migration sweep: which bills
// were re-derived and which failed, in sweep order.
type MigrationReport struct {
	Migrated []string
	Failed   []MigrationFailure
}

// Count returns the number of successfully migrated bills.
func (r *MigrationReport) Count() int {
	return len(r.Migrated)
}

// MigrateExistingBills re-derives ledger entries for every bill owned
// by the user, strictly sequentially. A failing bill is recorded in
// the report and the sweep continues with the next one.
//
// Not idempotent: nothing tracks which bills already have entries, so
// re-running the sweep inserts a duplicate set of entries per bill.
func (s *Service) MigrateExistingBills(userID string) (*MigrationReport, error) {
	billIDs, err := s.bills.ListBillIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills for user %s: %w", userID, err)
	}

	slog.Info("migrating existing bills", "user_id", userID, "bills", len(billIDs))

	report := &MigrationReport{}
	for _, billID := range billIDs {
		if _, err := s.DeriveBill(billID); err != nil {
			slog.Error("failed to migrate bill", "bill_id", billID, "error", err)
			report.Failed = append(report.Failed, MigrationFailure{BillID: billID, Err: err})
			continue
		}
		report.Migrated = append(report.Migrated, billID)
	}

	slog.Info("migration finished",
		"user_id", userID,
		"migrated", len(report.Migrated),
		"failed", len(report.Failed),
	)

	return report, nil
}
