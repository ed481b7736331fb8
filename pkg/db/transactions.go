package db

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/billtally/billtally/pkg/ledger"
)

// BankTransactionStore manages imported bank statement lines.
type BankTransactionStore struct {
	conn *Connection
}

// NewBankTransactionStore creates a new BankTransactionStore instance.
func NewBankTransactionStore(conn *Connection) *BankTransactionStore {
	return &BankTransactionStore{conn: conn}
}

// InsertTransaction inserts a bank transaction, assigning an ID when
// the transaction has none. It returns the stored transaction's ID.
func (s *BankTransactionStore) InsertTransaction(txn *ledger.BankTransaction) (string, error) {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}

	query := `
		INSERT INTO bank_transactions (
			id, user_id, transaction_date, description,
			debit_amount, credit_amount, reference_number, balance
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.conn.Exec(query,
		txn.ID,
		txn.UserID,
		txn.TransactionDate,
		txn.Description,
		txn.DebitAmount,
		txn.CreditAmount,
		txn.ReferenceNumber,
		txn.Balance,
	)

	if err != nil {
		return "", fmt.Errorf("failed to insert bank transaction: %w", err)
	}

	return txn.ID, nil
}

// CountTransactions returns the number of stored transactions for a user.
func (s *BankTransactionStore) CountTransactions(userID string) (int, error) {
	var count int
	err := s.conn.QueryRow(`SELECT COUNT(*) FROM bank_transactions WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bank transactions: %w", err)
	}
	return count, nil
}
