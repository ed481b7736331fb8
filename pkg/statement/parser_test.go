package statement

import (
	"strings"
	"testing"
)

const sampleStatement = `date,description,debit,credit,reference,balance
2024-01-05,HP PETROL PUMP MUMBAI,3000.00,,TXN001,47000.00
2024-01-08,NEFT FROM ABC TRADERS,,25000.00,NEFT123,72000.00
2024-01-10,ATM CASH WITHDRAWAL,5000.00,,ATM456,67000.00
`

func TestParseReader(t *testing.T) {
	txns, err := ParseReader(strings.NewReader(sampleStatement), "user-1")
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}

	if len(txns) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txns))
	}

	first := txns[0]
	if first.UserID != "user-1" {
		t.Errorf("expected user-1, got %s", first.UserID)
	}
	if first.TransactionDate != "2024-01-05" {
		t.Errorf("expected date 2024-01-05, got %s", first.TransactionDate)
	}
	if first.Description != "HP PETROL PUMP MUMBAI" {
		t.Errorf("unexpected description: %s", first.Description)
	}
	if first.DebitAmount != 3000 || first.CreditAmount != 0 {
		t.Errorf("expected debit 3000 credit 0, got %v/%v", first.DebitAmount, first.CreditAmount)
	}
	if first.ReferenceNumber != "TXN001" {
		t.Errorf("expected reference TXN001, got %s", first.ReferenceNumber)
	}
	if first.Balance != 47000 {
		t.Errorf("expected balance 47000, got %v", first.Balance)
	}

	second := txns[1]
	if second.DebitAmount != 0 || second.CreditAmount != 25000 {
		t.Errorf("expected debit 0 credit 25000, got %v/%v", second.DebitAmount, second.CreditAmount)
	}
}

func TestParseReaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "bad date",
			input: "date,description,debit,credit,reference,balance\n05/01/2024,FUEL,100,,R1,900\n",
		},
		{
			name:  "bad amount",
			input: "date,description,debit,credit,reference,balance\n2024-01-05,FUEL,abc,,R1,900\n",
		},
		{
			name:  "missing description",
			input: "date,description,debit,credit,reference,balance\n2024-01-05,,100,,R1,900\n",
		},
		{
			name:  "wrong column count",
			input: "date,description,debit,credit\n2024-01-05,FUEL,100,\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseReader(strings.NewReader(tt.input), "user-1"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseReaderAmountSeparators(t *testing.T) {
	input := "date,description,debit,credit,reference,balance\n" +
		`2024-02-01,RENT PAYMENT,"15,000.00",,R9,"1,05,000.00"` + "\n"

	txns, err := ParseReader(strings.NewReader(input), "user-1")
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	if txns[0].DebitAmount != 15000 {
		t.Errorf("expected debit 15000, got %v", txns[0].DebitAmount)
	}
	if txns[0].Balance != 105000 {
		t.Errorf("expected balance 105000, got %v", txns[0].Balance)
	}
}

func TestParseReaderHeaderOnly(t *testing.T) {
	txns, err := ParseReader(strings.NewReader("date,description,debit,credit,reference,balance\n"), "user-1")
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	if len(txns) != 0 {
		t.Errorf("expected no transactions, got %d", len(txns))
	}
}
