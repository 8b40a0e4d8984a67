package payoff

// referenceLoans returns a realistic loan set used across tests: a mix of
// student loans sharing rates (so scores tie), two state loans, and one loan
// already paid off (zero principal).
func referenceLoans() []Loan {
	return []Loan{
		NewLoan("AE", 0, 6.80, 0),
		NewLoan("AA", 790.58, 5.60, 8.62),
		NewLoan("AB", 790.54, 5.60, 8.62),
		NewLoan("AI", 4500.00, 5.05, 47.84),
		NewLoan("AJ", 6396.97, 5.05, 69.61),
		NewLoan("AK", 5500.00, 4.53, 57.08),
		NewLoan("AL", 7121.42, 4.53, 75.55),
		NewLoan("AC", 960.00, 4.50, 9.95),
		NewLoan("AF", 3500.00, 4.45, 36.19),
		NewLoan("AG", 6620.73, 4.45, 69.83),
		NewLoan("AH", 1000.00, 4.45, 10.34),
		NewLoan("AM", 5500.00, 2.75, 52.48),
		NewLoan("AN", 7000.00, 2.75, 67.70),
		NewLoan("State-1", 4420, 7.99, 78.07),
		NewLoan("State-2", 3601, 6.30, 38.21),
	}
}

// names extracts the loan names of a ranking, in order.
func names(ranked []DerivedLoan) []string {
	out := make([]string, len(ranked))
	for i, d := range ranked {
		out[i] = d.Name
	}
	return out
}
