// Package payoff ranks a set of loans under different debt payoff
// prioritization strategies.
//
// For each loan it derives the monthly interest accrual and three scores:
//   - avalanche: the interest rate, highest rate first.
//   - snowball: the negated principal, smallest balance first.
//   - balanced: the rate weighted by the natural log of the principal.
//
// Analyze produces one stable ranking per strategy over the same loan set,
// plus summary aggregates (total debt, total monthly interest, and the
// extremal loans). The analysis is a pure function: it performs no I/O and is
// safe to call from concurrent goroutines.
//
// Loans are supplied as data, never embedded: they are kept in a
// human-readable JSONL file (one loan per line), or imported from a loan
// servicer's JSON export with configurable JSONPath queries.
//
// This package serves as the foundational logic for the `dps` command-line
// tool.
package payoff
