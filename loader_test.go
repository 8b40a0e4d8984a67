package payoff

import (
	"path/filepath"
	"testing"
)

func TestLoadSaveLoans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loans.jsonl")
	loans := referenceLoans()

	if err := SaveLoans(path, loans); err != nil {
		t.Fatalf("SaveLoans() error = %v", err)
	}
	loaded, err := LoadLoans(path)
	if err != nil {
		t.Fatalf("LoadLoans() error = %v", err)
	}

	if len(loaded) != len(loans) {
		t.Fatalf("LoadLoans() returned %d loans, want %d", len(loaded), len(loans))
	}
	// order is semantic and must survive the file.
	for i := range loans {
		if loaded[i].Name != loans[i].Name {
			t.Errorf("loan %d = %q, want %q", i, loaded[i].Name, loans[i].Name)
		}
	}
}

func TestLoadLoans_MissingFile(t *testing.T) {
	_, err := LoadLoans(filepath.Join(t.TempDir(), "nope.jsonl"))
	if err == nil {
		t.Error("LoadLoans() expected an error for a missing file")
	}
}
