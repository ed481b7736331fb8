package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/billtally/billtally/pkg/ledger"
)

// LedgerStore manages derived ledger entries. It implements
// ledger.EntrySink.
type LedgerStore struct {
	conn *Connection
}

// NewLedgerStore creates a new LedgerStore instance.
func NewLedgerStore(conn *Connection) *LedgerStore {
	return &LedgerStore{conn: conn}
}

// InsertEntries writes the entries derived from one source document as
// a single batch. The rows go in within one database transaction, so a
// rejected row surfaces as one failure instead of a silent partial
// ledger. IDs are assigned to entries that have none.
func (s *LedgerStore) InsertEntries(entries []ledger.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO detailed_ledgers (
			id, user_id, bill_id, party_name, account_name, category,
			debit_amount, credit_amount, description, date
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = uuid.NewString()
		}

		// NULL bill_id for entries not derived from a bill
		var billID interface{}
		if entries[i].BillID != "" {
			billID = entries[i].BillID
		}

		_, err := stmt.Exec(
			entries[i].ID,
			entries[i].UserID,
			billID,
			entries[i].PartyName,
			entries[i].AccountName,
			string(entries[i].Category),
			entries[i].DebitAmount,
			entries[i].CreditAmount,
			entries[i].Description,
			entries[i].Date,
		)
		if err != nil {
			return fmt.Errorf("failed to insert ledger entry %d of %d: %w", i+1, len(entries), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ledger entries: %w", err)
	}

	return nil
}

// Stats represents ledger statistics for one user.
type Stats struct {
	TotalEntries  int
	BillEntries   int
	TotalDebit    float64
	TotalCredit   float64
	LastEntryDate sql.NullString
}

// GetStats retrieves ledger statistics for a user.
func (s *LedgerStore) GetStats(userID string) (*Stats, error) {
	var stats Stats

	err := s.conn.QueryRow(`
		SELECT COUNT(*),
		       COUNT(bill_id),
		       COALESCE(SUM(debit_amount), 0),
		       COALESCE(SUM(credit_amount), 0),
		       MAX(date)
		FROM detailed_ledgers
		WHERE user_id = ?
	`, userID).Scan(
		&stats.TotalEntries,
		&stats.BillEntries,
		&stats.TotalDebit,
		&stats.TotalCredit,
		&stats.LastEntryDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger stats: %w", err)
	}

	return &stats, nil
}

// CategoryCount is the number of ledger entries in one category.
type CategoryCount struct {
	Category ledger.Category
	Count    int
}

// CountByCategory returns per-category entry counts for a user,
// largest first.
func (s *LedgerStore) CountByCategory(userID string) ([]CategoryCount, error) {
	rows, err := s.conn.Query(`
		SELECT category, COUNT(*)
		FROM detailed_ledgers
		WHERE user_id = ?
		GROUP BY category
		ORDER BY COUNT(*) DESC, category
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count entries by category: %w", err)
	}
	defer rows.Close()

	var counts []CategoryCount
	for rows.Next() {
		var cc CategoryCount
		var category string
		if err := rows.Scan(&category, &cc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		cc.Category = ledger.Category(category)
		counts = append(counts, cc)
	}

	return counts, rows.Err()
}
