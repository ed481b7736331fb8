package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/billtally/billtally/pkg/ledger"
)

// BillStore manages stored bills. It implements ledger.BillSource.
type BillStore struct {
	conn *Connection
}

// NewBillStore creates a new BillStore instance.
func NewBillStore(conn *Connection) *BillStore {
	return &BillStore{conn: conn}
}

// InsertBill inserts a bill, assigning an ID when the bill has none.
// It returns the stored bill's ID.
func (s *BillStore) InsertBill(bill *ledger.Bill) (string, error) {
	if bill.ID == "" {
		bill.ID = uuid.NewString()
	}

	query := `
		INSERT INTO bills (
			id, user_id, vendor_name, bill_number, bill_type, bill_date,
			total_amount, tax_amount, cgst, sgst, igst, description
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.conn.Exec(query,
		bill.ID,
		bill.UserID,
		bill.VendorName,
		bill.BillNumber,
		string(bill.BillType),
		bill.BillDate,
		bill.TotalAmount,
		bill.TaxAmount,
		bill.CGST,
		bill.SGST,
		bill.IGST,
		bill.Description,
	)

	if err != nil {
		return "", fmt.Errorf("failed to insert bill: %w", err)
	}

	return bill.ID, nil
}

// GetBill retrieves a bill by ID. A missing bill yields an error
// wrapping ledger.ErrBillNotFound.
func (s *BillStore) GetBill(id string) (*ledger.Bill, error) {
	query := `
		SELECT id, user_id, vendor_name, bill_number, bill_type, bill_date,
		       total_amount, tax_amount, cgst, sgst, igst, COALESCE(description, '')
		FROM bills
		WHERE id = ?
	`

	var bill ledger.Bill
	var billType string

	err := s.conn.QueryRow(query, id).Scan(
		&bill.ID,
		&bill.UserID,
		&bill.VendorName,
		&bill.BillNumber,
		&billType,
		&bill.BillDate,
		&bill.TotalAmount,
		&bill.TaxAmount,
		&bill.CGST,
		&bill.SGST,
		&bill.IGST,
		&bill.Description,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("bill %s: %w", id, ledger.ErrBillNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	bill.BillType = ledger.BillType(billType)
	return &bill, nil
}

// ListBillIDs returns the IDs of all bills owned by the user, oldest first.
func (s *BillStore) ListBillIDs(userID string) ([]string, error) {
	query := `
		SELECT id FROM bills
		WHERE user_id = ?
		ORDER BY created_at, id
	`

	rows, err := s.conn.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan bill ID: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
