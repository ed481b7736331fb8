// Package ledger implements the double-entry ledger derivation core:
// keyword classification against a fixed chart of accounts, derivation
// of balanced ledger entries from bills and bank transactions, and the
// historical bill migration sweep.
package ledger

// Category is one bucket of the fixed chart of accounts.
// The set is closed: every classified description maps to exactly one
// of these values, and the detailed_ledgers schema enforces the same
// list, so code and storage cannot drift.
type Category string

const (
	TravelExpense       Category = "travel_expense"
	FuelExpense         Category = "fuel_expense"
	OfficeExpense       Category = "office_expense"
	ConstructionExpense Category = "construction_expense"
	MaterialExpense     Category = "material_expense"
	SalaryExpense       Category = "salary_expense"
	RentExpense         Category = "rent_expense"
	UtilitiesExpense    Category = "utilities_expense"
	ProfessionalFees    Category = "professional_fees"
	MarketingExpense    Category = "marketing_expense"
	MaintenanceExpense  Category = "maintenance_expense"
	InsuranceExpense    Category = "insurance_expense"
	SalesIncome         Category = "sales_income"
	ServiceIncome       Category = "service_income"
	OtherIncome         Category = "other_income"
	CGSTPayable         Category = "cgst_payable"
	SGSTPayable         Category = "sgst_payable"
	IGSTPayable         Category = "igst_payable"
	CGSTReceivable      Category = "cgst_receivable"
	SGSTReceivable      Category = "sgst_receivable"
	IGSTReceivable      Category = "igst_receivable"
	AccountsPayable     Category = "accounts_payable"
	AccountsReceivable  Category = "accounts_receivable"
	Cash                Category = "cash"
	Bank                Category = "bank"
	Other               Category = "other"
)

var allCategories = []Category{
	TravelExpense,
	FuelExpense,
	OfficeExpense,
	ConstructionExpense,
	MaterialExpense,
	SalaryExpense,
	RentExpense,
	UtilitiesExpense,
	ProfessionalFees,
	MarketingExpense,
	MaintenanceExpense,
	InsuranceExpense,
	SalesIncome,
	ServiceIncome,
	OtherIncome,
	CGSTPayable,
	SGSTPayable,
	IGSTPayable,
	CGSTReceivable,
	SGSTReceivable,
	IGSTReceivable,
	AccountsPayable,
	AccountsReceivable,
	Cash,
	Bank,
	Other,
}

var categorySet = func() map[Category]bool {
	set := make(map[Category]bool, len(allCategories))
	for _, c := range allCategories {
		set[c] = true
	}
	return set
}()

// Categories returns the full chart of accounts in declaration order.
func Categories() []Category {
	result := make([]Category, len(allCategories))
	copy(result, allCategories)
	return result
}

// IsValid reports whether c is a member of the chart of accounts.
func (c Category) IsValid() bool {
	return categorySet[c]
}
