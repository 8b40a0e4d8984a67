package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/payoff"
)

// SummaryMarkdown renders the analysis as a markdown document, meant to be
// displayed on the terminal.
func SummaryMarkdown(r *payoff.StrategyReport) string {
	var b strings.Builder
	s := r.Summary

	fmt.Fprintf(&b, "# Loan Summary\n\n")
	fmt.Fprintf(&b, "Total debt **%s**, accruing **%s** of interest per month.\n\n", s.TotalDebt, s.TotalMonthlyInterest)

	fmt.Fprintf(&b, "| Loan | |\n")
	fmt.Fprintf(&b, "|---|---|\n")
	fmt.Fprintf(&b, "| Highest interest rate | %s |\n", s.HighestInterestLoan)
	fmt.Fprintf(&b, "| Smallest balance | %s |\n", s.SmallestBalanceLoan)
	fmt.Fprintf(&b, "| Most expensive per month | %s |\n", s.MostExpensiveLoan)

	for _, strategy := range payoff.StrategyOrder {
		fmt.Fprintf(&b, "\n## %s\n\n", strategyTitle(strategy))
		fmt.Fprintf(&b, "| # | Loan | Principal | Rate | Monthly Payment | Monthly Interest |\n")
		fmt.Fprintf(&b, "|---|---|---|---|---|---|\n")
		for i, d := range r.Strategies[strategy] {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
				i+1, d.Name, d.Principal, d.Rate, d.MinPayment, d.MonthlyInterest)
		}
	}
	return b.String()
}

// strategyTitle turns "avalanche_method" into "Avalanche Method".
func strategyTitle(s payoff.Strategy) string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
