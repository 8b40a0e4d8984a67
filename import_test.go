package payoff

import (
	"strings"
	"testing"
)

func TestImportLoans(t *testing.T) {
	export := `{
		"exported_on": "2026-08-30",
		"loans": [
			{"name": "AA", "principal": 790.58, "rate": 5.6, "min_payment": 8.62},
			{"name": "State-1", "principal": 4420, "rate": 7.99}
		]
	}`

	loans, err := ImportLoans(strings.NewReader(export), DefaultImportSpec)
	if err != nil {
		t.Fatalf("ImportLoans() error = %v", err)
	}
	if len(loans) != 2 {
		t.Fatalf("ImportLoans() returned %d loans, want 2", len(loans))
	}

	if got := loans[0]; got.Name != "AA" ||
		!got.Principal.Equal(M(790.58, "USD")) ||
		!got.Rate.Equal(5.6) ||
		!got.MinPayment.Equal(M(8.62, "USD")) {
		t.Errorf("loans[0] = %+v", got)
	}
	// a missing min_payment defaults to zero.
	if got := loans[1]; got.Name != "State-1" || !got.MinPayment.IsZero() {
		t.Errorf("loans[1] = %+v", got)
	}
}

func TestImportLoans_CustomSpec(t *testing.T) {
	// servicer export nesting records under "accounts" with its own field names.
	export := `{"accounts": [
		{"label": "car", "balance": 12000.50, "apr": 3.9, "installment": 220.10}
	]}`
	spec := ImportSpec{
		Records:    "$.accounts[*]",
		Name:       "$.label",
		Principal:  "$.balance",
		Rate:       "$.apr",
		MinPayment: "$.installment",
	}

	loans, err := ImportLoans(strings.NewReader(export), spec)
	if err != nil {
		t.Fatalf("ImportLoans() error = %v", err)
	}
	if len(loans) != 1 {
		t.Fatalf("ImportLoans() returned %d loans, want 1", len(loans))
	}
	if got := loans[0]; got.Name != "car" ||
		!got.Principal.Equal(M(12000.50, "USD")) ||
		!got.Rate.Equal(3.9) ||
		!got.MinPayment.Equal(M(220.10, "USD")) {
		t.Errorf("loans[0] = %+v", got)
	}
}

func TestImportLoans_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		export string
	}{
		{"not json", "not json at all"},
		{"no records", `{"loans": []}`},
		{"records path misses", `{"accounts": [{"name":"AA"}]}`},
		{"principal not a number", `{"loans": [{"name":"AA","principal":"lots","rate":5}]}`},
		{"name not a string", `{"loans": [{"name":42,"principal":100,"rate":5}]}`},
		{"negative principal", `{"loans": [{"name":"AA","principal":-100,"rate":5}]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportLoans(strings.NewReader(tc.export), DefaultImportSpec); err == nil {
				t.Error("ImportLoans() expected an error")
			}
		})
	}
}
