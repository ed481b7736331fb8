package db

// Schema defines the SQL statements to create database tables.
// The category CHECK list mirrors ledger.Categories(); the enumeration
// is closed, so the constraint and the Go constants must move together.
const Schema = `
-- Bills table
-- Source documents created by manual entry or the extraction service
CREATE TABLE IF NOT EXISTS bills (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    vendor_name TEXT NOT NULL,
    bill_number TEXT NOT NULL,
    bill_type TEXT NOT NULL DEFAULT 'purchase',
    bill_date TEXT NOT NULL,           -- YYYY-MM-DD
    total_amount REAL NOT NULL,
    tax_amount REAL NOT NULL DEFAULT 0,
    cgst REAL NOT NULL DEFAULT 0,
    sgst REAL NOT NULL DEFAULT 0,
    igst REAL NOT NULL DEFAULT 0,
    description TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_bills_user
    ON bills(user_id);

-- Bank transactions table
-- Statement lines parsed from imported bank statements
CREATE TABLE IF NOT EXISTS bank_transactions (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    transaction_date TEXT NOT NULL,    -- YYYY-MM-DD
    description TEXT NOT NULL,
    debit_amount REAL NOT NULL DEFAULT 0,
    credit_amount REAL NOT NULL DEFAULT 0,
    reference_number TEXT,
    balance REAL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_bank_transactions_user
    ON bank_transactions(user_id);

-- Detailed ledgers table
-- Derived double-entry rows; one batch per source document
CREATE TABLE IF NOT EXISTS detailed_ledgers (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    bill_id TEXT REFERENCES bills(id),
    party_name TEXT NOT NULL,
    account_name TEXT NOT NULL,
    category TEXT NOT NULL CHECK (category IN (
        'travel_expense', 'fuel_expense', 'office_expense',
        'construction_expense', 'material_expense', 'salary_expense',
        'rent_expense', 'utilities_expense', 'professional_fees',
        'marketing_expense', 'maintenance_expense', 'insurance_expense',
        'sales_income', 'service_income', 'other_income',
        'cgst_payable', 'sgst_payable', 'igst_payable',
        'cgst_receivable', 'sgst_receivable', 'igst_receivable',
        'accounts_payable', 'accounts_receivable',
        'cash', 'bank', 'other'
    )),
    debit_amount REAL NOT NULL DEFAULT 0,
    credit_amount REAL NOT NULL DEFAULT 0,
    description TEXT,
    date TEXT NOT NULL,                -- YYYY-MM-DD
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_detailed_ledgers_user
    ON detailed_ledgers(user_id);

CREATE INDEX IF NOT EXISTS idx_detailed_ledgers_bill
    ON detailed_ledgers(bill_id);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
