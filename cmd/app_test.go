package cmd

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/etnz/payoff"
)

func TestCommands(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Commands {
		if seen[c.Name()] {
			t.Errorf("duplicate command %q", c.Name())
		}
		seen[c.Name()] = true
		if c.Synopsis() == "" {
			t.Errorf("command %q has no synopsis", c.Name())
		}
		if c.Usage() == "" {
			t.Errorf("command %q has no usage", c.Name())
		}
	}
}

func TestLoadLoans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loans.jsonl")
	if err := payoff.SaveLoans(path, []payoff.Loan{payoff.NewLoan("AA", 790.58, 5.6, 8.62)}); err != nil {
		t.Fatalf("SaveLoans() error = %v", err)
	}

	// an explicit path wins.
	loans, err := LoadLoans(path)
	if err != nil {
		t.Fatalf("LoadLoans(path) error = %v", err)
	}
	if len(loans) != 1 || loans[0].Name != "AA" {
		t.Errorf("LoadLoans(path) = %+v", loans)
	}

	// an empty path falls back to the global -loans-file flag.
	if err := flag.Set("loans-file", path); err != nil {
		t.Fatalf("flag.Set() error = %v", err)
	}
	loans, err = LoadLoans("")
	if err != nil {
		t.Fatalf("LoadLoans(\"\") error = %v", err)
	}
	if len(loans) != 1 || loans[0].Name != "AA" {
		t.Errorf("LoadLoans(\"\") = %+v", loans)
	}
}
