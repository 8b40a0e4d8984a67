package payoff

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file contains code to read and write loan sets in a way that is still
// human-readable and git-friendly: a JSONL file, one loan per line.
//
// The line order is preserved on every read and write. It is semantic: when
// two loans tie on a score, the one earlier in the file ranks first.

// DecodeLoans parses a JSONL stream of loan records.
//
// A record missing its name, principal or rate is an invalid record and fails
// the decode with an error naming the line. A missing min_payment defaults to
// zero. Blank lines are skipped.
func DecodeLoans(r io.Reader) ([]Loan, error) {
	// to parse a json, we use a dedicated local struct with tag annotation.
	// Fields are pointers to tell a missing field apart from a zero one.
	type jloan struct {
		Name       *string  `json:"name"`
		Principal  *float64 `json:"principal"`
		Rate       *float64 `json:"rate"`
		MinPayment *float64 `json:"min_payment"`
	}

	var loans []Loan
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var jl jloan
		if err := json.Unmarshal([]byte(text), &jl); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, text, err)
		}
		switch {
		case jl.Name == nil || *jl.Name == "":
			return nil, fmt.Errorf("invalid record on line %d: missing loan name", line)
		case jl.Principal == nil:
			return nil, fmt.Errorf("invalid record on line %d: loan %q has no principal", line, *jl.Name)
		case jl.Rate == nil:
			return nil, fmt.Errorf("invalid record on line %d: loan %q has no rate", line, *jl.Name)
		}
		var minPayment float64
		if jl.MinPayment != nil {
			minPayment = *jl.MinPayment
		}

		loan := NewLoan(*jl.Name, *jl.Principal, *jl.Rate, minPayment)
		if err := loan.Validate(); err != nil {
			return nil, fmt.Errorf("invalid record on line %d: %w", line, err)
		}
		loans = append(loans, loan)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading loans: %w", err)
	}
	return loans, nil
}

// EncodeLoan appends a single loan as one canonical JSON line.
func EncodeLoan(w io.Writer, l Loan) error {
	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("could not encode loan %q: %w", l.Name, err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", raw); err != nil {
		return fmt.Errorf("could not write loan %q: %w", l.Name, err)
	}
	return nil
}

// EncodeLoans writes the whole loan set in its input order.
func EncodeLoans(w io.Writer, loans []Loan) error {
	for _, l := range loans {
		if err := EncodeLoan(w, l); err != nil {
			return err
		}
	}
	return nil
}
