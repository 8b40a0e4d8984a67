package payoff

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Strategy identifies one payoff prioritization method.
type Strategy string

const (
	AvalancheMethod Strategy = "avalanche_method" // highest rate first
	SnowballMethod  Strategy = "snowball_method"  // smallest balance first
	BalancedMethod  Strategy = "balanced_method"  // rate weighted by log balance
)

// StrategyOrder lists the strategies in reporting order. Strategies is a map,
// and map iteration order would otherwise leak into reports.
var StrategyOrder = []Strategy{AvalancheMethod, SnowballMethod, BalancedMethod}

// DerivedLoan carries a loan together with the fields derived for ranking.
//
// InterestPrincipalRatio and BalancedScore are non-finite when the principal
// is zero. They are never printed; consumers that read them directly must
// tolerate Inf and NaN.
type DerivedLoan struct {
	Loan
	MonthlyInterest        Money
	InterestPrincipalRatio float64
	AvalancheScore         float64
	SnowballScore          float64
	BalancedScore          float64
}

// Summary holds the whole-set aggregates of an analysis.
type Summary struct {
	TotalDebt            Money
	TotalMonthlyInterest Money
	HighestInterestLoan  string // name of the loan with the maximum rate
	SmallestBalanceLoan  string // name of the loan with the minimum principal
	MostExpensiveLoan    string // name of the loan with the maximum monthly interest
}

// StrategyReport is the result of analyzing a loan set: one ranking per
// strategy over the same loans, plus the summary aggregates.
type StrategyReport struct {
	Strategies map[Strategy][]DerivedLoan
	Summary    Summary
}

// Analyze derives the ranking scores for every loan, ranks the set under each
// strategy, and computes the summary.
//
// Each ranking is a permutation of the input set, sorted descending by its
// score. The sorts are stable: loans with equal scores keep their input
// order, so the input order is semantic when rates or balances tie.
//
// Analyze is a pure function of its input. It rejects an empty set and any
// invalid record, but never fails on a zero-principal loan.
func Analyze(loans []Loan) (*StrategyReport, error) {
	if len(loans) == 0 {
		return nil, fmt.Errorf("no loans to analyze")
	}
	derived := make([]DerivedLoan, 0, len(loans))
	for i, l := range loans {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("invalid loan record %d: %w", i+1, err)
		}
		derived = append(derived, derive(l))
	}

	return &StrategyReport{
		Strategies: map[Strategy][]DerivedLoan{
			AvalancheMethod: rank(derived, func(d DerivedLoan) float64 { return d.AvalancheScore }),
			SnowballMethod:  rank(derived, func(d DerivedLoan) float64 { return d.SnowballScore }),
			BalancedMethod:  rank(derived, func(d DerivedLoan) float64 { return d.BalancedScore }),
		},
		Summary: summarize(derived),
	}, nil
}

// derive computes the per-loan fields. They are independent of each other.
func derive(l Loan) DerivedLoan {
	principal := l.Principal.AsFloat()
	rate := float64(l.Rate)
	return DerivedLoan{
		Loan:                   l,
		MonthlyInterest:        l.MonthlyInterest(),
		InterestPrincipalRatio: (rate / 100) / principal,
		AvalancheScore:         rate,
		SnowballScore:          -principal,
		BalancedScore:          rate * math.Log(principal),
	}
}

// rank returns a copy of derived sorted descending by score, stable.
func rank(derived []DerivedLoan, score func(DerivedLoan) float64) []DerivedLoan {
	ranked := slices.Clone(derived)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranksAbove(score(ranked[i]), score(ranked[j]))
	})
	return ranked
}

// ranksAbove reports whether score a takes strict priority over score b.
// NaN ranks below everything else, including -Inf, so a zero-principal loan
// always lands at the bottom of a ranking instead of at a sort-dependent
// position.
func ranksAbove(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a > b
}

// summarize computes the aggregates. The total monthly interest sums the
// per-loan rounded values: rounding happens per loan, then the cents are
// summed, so the total can differ from rounding the exact grand total. That
// matches what a statement of per-loan charges adds up to.
func summarize(derived []DerivedLoan) Summary {
	maxRate, minBalance, maxInterest := derived[0], derived[0], derived[0]
	var debt, interest Money
	for _, d := range derived {
		debt = debt.Add(d.Principal)
		interest = interest.Add(d.MonthlyInterest)
		if d.Rate > maxRate.Rate {
			maxRate = d
		}
		if d.Principal.LessThan(minBalance.Principal) {
			minBalance = d
		}
		if d.MonthlyInterest.GreaterThan(maxInterest.MonthlyInterest) {
			maxInterest = d
		}
	}
	return Summary{
		TotalDebt:            debt,
		TotalMonthlyInterest: interest,
		HighestInterestLoan:  maxRate.Name,
		SmallestBalanceLoan:  minBalance.Name,
		MostExpensiveLoan:    maxInterest.Name,
	}
}
