package payoff

import "testing"

func TestLoan_MonthlyInterest(t *testing.T) {
	testCases := []struct {
		name      string
		principal float64
		rate      float64
		want      string
	}{
		{"A", 1000, 10, "$8.33"},
		{"B", 500, 5, "$2.08"},
		{"C", 2000, 10, "$16.67"},
		{"State-1", 4420, 7.99, "$29.43"},
		{"AI", 4500, 5.05, "$18.94"},
		{"tie rounds to even", 1000, 0.15, "$0.12"}, // exact $0.125
		{"paid off", 0, 6.8, "$0.00"},
		{"free", 1000, 0, "$0.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLoan(tc.name, tc.principal, tc.rate, 0)
			if got := l.MonthlyInterest().String(); got != tc.want {
				t.Errorf("MonthlyInterest() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestLoan_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		loan    Loan
		wantErr bool
	}{
		{"valid", NewLoan("AA", 790.58, 5.6, 8.62), false},
		{"zero principal is valid", NewLoan("AE", 0, 6.8, 0), false},
		{"zero rate is valid", NewLoan("free", 1000, 0, 10), false},
		{"no name", NewLoan("", 1000, 5, 10), true},
		{"negative principal", NewLoan("bad", -0.01, 5, 10), true},
		{"negative rate", NewLoan("bad", 1000, -5, 10), true},
		{"negative minimum payment", NewLoan("bad", 1000, 5, -0.01), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.loan.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
