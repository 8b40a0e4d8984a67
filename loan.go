package payoff

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// reportingCurrency is the currency of loan files and reports.
// Multi-currency loan sets are out of scope.
const reportingCurrency = "USD"

// Loan is a single debt record: an outstanding balance accruing interest at a
// fixed annual rate, with a monthly minimum payment.
type Loan struct {
	Name       string  // unique within a loan set
	Principal  Money   // current balance, may be zero for a paid-off loan
	Rate       Percent // annual rate in percent
	MinPayment Money   // monthly payment floor, informational for ranking
}

// NewLoan is a convenient constructor for amounts in the reporting currency.
func NewLoan(name string, principal, rate, minPayment float64) Loan {
	return Loan{
		Name:       name,
		Principal:  M(principal, reportingCurrency),
		Rate:       Percent(rate),
		MinPayment: M(minPayment, reportingCurrency),
	}
}

// Validate returns an error naming the first rule the loan violates.
// A zero principal is valid: a loan reaching zero balance is an expected
// real-world state.
func (l Loan) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("loan has no name")
	}
	if l.Principal.IsNegative() {
		return fmt.Errorf("loan %q has a negative principal %s", l.Name, l.Principal)
	}
	if l.Rate < 0 {
		return fmt.Errorf("loan %q has a negative rate %s", l.Name, l.Rate)
	}
	if l.MinPayment.IsNegative() {
		return fmt.Errorf("loan %q has a negative minimum payment %s", l.Name, l.MinPayment)
	}
	return nil
}

// MonthlyInterest returns one month of interest accrued on the principal at
// the loan's annual rate, rounded to the cent half-to-even.
func (l Loan) MonthlyInterest() Money {
	rate := decimal.NewFromFloat(float64(l.Rate))
	monthly := l.Principal.value.Mul(rate).Div(decimal.NewFromInt(1200))
	return Money{value: monthly, cur: l.Principal.cur}.roundCents()
}

// MarshalJSON writes the loan as a JSON object with a canonical field order.
func (l Loan) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", l.Name)
	w.Append("principal", l.Principal)
	w.Append("rate", l.Rate)
	w.Optional("min_payment", l.MinPayment)
	return w.MarshalJSON()
}
