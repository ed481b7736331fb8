// Package statement parses bank statement CSV exports into bank
// transactions ready for ledger derivation.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/billtally/billtally/pkg/ledger"
)

// Expected CSV columns, in order:
//
//	date, description, debit, credit, reference, balance
//
// The first row is treated as a header and skipped.
const expectedColumns = 6

// Parse reads a bank statement CSV file and returns the transactions
// it contains, owned by the given user.
func Parse(path, userID string) ([]ledger.BankTransaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file: %w", err)
	}
	defer file.Close()

	txns, err := ParseReader(file, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return txns, nil
}

// ParseReader parses statement CSV data from a reader.
func ParseReader(r io.Reader, userID string) ([]ledger.BankTransaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = expectedColumns
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("statement is empty")
	}

	var txns []ledger.BankTransaction
	for i, record := range records {
		if i == 0 {
			// header row
			continue
		}

		txn, err := parseRow(record, userID)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		txns = append(txns, txn)
	}

	return txns, nil
}

func parseRow(record []string, userID string) (ledger.BankTransaction, error) {
	date := strings.TrimSpace(record[0])
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ledger.BankTransaction{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	description := strings.TrimSpace(record[1])
	if description == "" {
		return ledger.BankTransaction{}, fmt.Errorf("empty description")
	}

	debit, err := parseAmount(record[2])
	if err != nil {
		return ledger.BankTransaction{}, fmt.Errorf("invalid debit amount: %w", err)
	}

	credit, err := parseAmount(record[3])
	if err != nil {
		return ledger.BankTransaction{}, fmt.Errorf("invalid credit amount: %w", err)
	}

	balance, err := parseAmount(record[5])
	if err != nil {
		return ledger.BankTransaction{}, fmt.Errorf("invalid balance: %w", err)
	}

	return ledger.BankTransaction{
		UserID:          userID,
		TransactionDate: date,
		Description:     description,
		DebitAmount:     debit,
		CreditAmount:    credit,
		ReferenceNumber: strings.TrimSpace(record[4]),
		Balance:         balance,
	}, nil
}

// parseAmount parses a statement amount. Empty cells mean zero;
// thousands separators are tolerated.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q as amount", s)
	}
	return value, nil
}
