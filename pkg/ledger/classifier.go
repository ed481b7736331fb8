package ledger

import "strings"

// classificationRule pairs a category with the keywords that select it.
type classificationRule struct {
	category Category
	keywords []string
}

// classificationRules is evaluated top to bottom; the first rule with
// any keyword present in the lower-cased description wins. Order is
// significant and must not be re-ranked by keyword specificity:
// "office construction supplies" is office_expense because the office
// rule comes first, even though the construction keywords also match.
var classificationRules = []classificationRule{
	{TravelExpense, []string{"fuel", "petrol", "diesel", "hp", "ioc", "bpcl", "shell", "reliance"}},
	{OfficeExpense, []string{"office", "stationery", "supplies"}},
	{ConstructionExpense, []string{"construction", "cement", "steel", "building", "contractor"}},
	{MaterialExpense, []string{"material", "hardware", "equipment"}},
	{RentExpense, []string{"rent", "lease"}},
	{UtilitiesExpense, []string{"electricity", "water", "gas", "utility", "mseb", "bses"}},
	{ProfessionalFees, []string{"professional", "consultant", "legal", "audit", "ca ", "advocate"}},
	{SalaryExpense, []string{"salary", "wages", "payroll"}},
	{SalesIncome, []string{"sale", "invoice", "receipt", "payment received"}},
	{ServiceIncome, []string{"service", "consulting", "fees received"}},
	{Bank, []string{"cash withdrawal", "atm", "transfer"}},
}

// Classify maps a free-text description to a category. It is total:
// a description that matches no rule yields Other, never an error.
func Classify(description string) Category {
	desc := strings.ToLower(description)
	for _, rule := range classificationRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(desc, keyword) {
				return rule.category
			}
		}
	}
	return Other
}

// ExtractPartyName returns the first two whitespace-delimited tokens
// of the description joined by a single space, or "Unknown Party" when
// the description is empty after trimming. This is a crude heuristic
// with no normalization of case, punctuation or legal-entity suffixes.
func ExtractPartyName(description string) string {
	words := strings.Fields(description)
	if len(words) == 0 {
		return "Unknown Party"
	}
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}
