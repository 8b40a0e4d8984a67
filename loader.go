package payoff

import (
	"fmt"
	"os"
)

// LoadLoans opens and decodes a loans JSONL file.
func LoadLoans(path string) ([]Loan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open loans file %q: %w", path, err)
	}
	defer f.Close()

	loans, err := DecodeLoans(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode loans file %q: %w", path, err)
	}
	return loans, nil
}

// SaveLoans writes the loan set to a file in canonical JSONL form, keeping
// the input order.
func SaveLoans(path string, loans []Loan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create loans file %q: %w", path, err)
	}
	if err := EncodeLoans(f, loans); err != nil {
		f.Close()
		return fmt.Errorf("could not write loans file %q: %w", path, err)
	}
	return f.Close()
}
