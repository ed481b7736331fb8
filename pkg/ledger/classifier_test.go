package ledger

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    Category
	}{
		{"fuel keyword", "diesel for site generator", TravelExpense},
		{"fuel retailer brand", "BPCL outlet pune", TravelExpense},
		{"office keyword", "office chairs", OfficeExpense},
		{"construction keyword", "cement bags 50kg", ConstructionExpense},
		{"material keyword", "hardware fittings", MaterialExpense},
		{"rent keyword", "shop lease september", RentExpense},
		{"utilities keyword", "electricity bill mseb", UtilitiesExpense},
		{"professional keyword", "legal consultation", ProfessionalFees},
		{"ca with trailing space", "ca firm retainer", ProfessionalFees},
		{"salary keyword", "payroll august", SalaryExpense},
		{"sales keyword", "payment received from client", SalesIncome},
		{"service keyword", "consulting engagement", ServiceIncome},
		{"bank keyword", "atm withdrawal", Bank},
		{"no match falls back", "miscellaneous 123", Other},
		{"empty description", "", Other},
		{"case insensitive", "OFFICE SUPPLIES", OfficeExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.description)
			if got != tt.expected {
				t.Errorf("Classify(%q) = %q, expected %q", tt.description, got, tt.expected)
			}
		})
	}
}

// Rule order resolves ambiguity: a description matching several rules
// takes the category of whichever rule is evaluated first.
func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    Category
	}{
		{"office before construction", "office construction supplies", OfficeExpense},
		{"travel before office", "petrol for office car", TravelExpense},
		{"construction before material", "construction material delivery", ConstructionExpense},
		{"rent before utilities", "rent including water charges", RentExpense},
		{"sales before service", "invoice for consulting service", SalesIncome},
		{"utilities before sales", "water connection invoice", UtilitiesExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.description)
			if got != tt.expected {
				t.Errorf("Classify(%q) = %q, expected %q", tt.description, got, tt.expected)
			}
		})
	}
}

// Classify is total: whatever the input, the result is a member of the
// chart of accounts.
func TestClassifyTotality(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"!@#$%^&*()",
		strings.Repeat("x", 10000),
		"ünïcödé Déscription",
		"\t\n\r",
	}

	for _, input := range inputs {
		got := Classify(input)
		if !got.IsValid() {
			t.Errorf("Classify(%q) = %q, not a chart of accounts member", input, got)
		}
	}
}

func TestClassifyRulesUseValidCategories(t *testing.T) {
	for i, rule := range classificationRules {
		if !rule.category.IsValid() {
			t.Errorf("rule %d targets invalid category %q", i, rule.category)
		}
		if len(rule.keywords) == 0 {
			t.Errorf("rule %d for %q has no keywords", i, rule.category)
		}
	}
}

func TestExtractPartyName(t *testing.T) {
	tests := []struct {
		description string
		expected    string
	}{
		{"HP PETROL PUMP MUMBAI", "HP PETROL"},
		{"Sharma Traders", "Sharma Traders"},
		{"Single", "Single"},
		{"", "Unknown Party"},
		{"   ", "Unknown Party"},
		{"  spaced   out   name  ", "spaced out"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got := ExtractPartyName(tt.description)
			if got != tt.expected {
				t.Errorf("ExtractPartyName(%q) = %q, expected %q", tt.description, got, tt.expected)
			}
		})
	}
}
