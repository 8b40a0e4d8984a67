package payoff

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// Loan servicers export account data as JSON documents of varying shapes.
// ImportSpec maps such a document onto loan records: Records selects the
// record objects, the other queries select fields within one record.
type ImportSpec struct {
	Records    string // JSONPath selecting the list of loan objects
	Name       string // JSONPath within a record
	Principal  string
	Rate       string
	MinPayment string // optional field, a miss defaults to zero
}

// DefaultImportSpec matches the common
// {"loans":[{"name":...,"principal":...,"rate":...,"min_payment":...}]}
// export shape.
var DefaultImportSpec = ImportSpec{
	Records:    "$.loans[*]",
	Name:       "$.name",
	Principal:  "$.principal",
	Rate:       "$.rate",
	MinPayment: "$.min_payment",
}

// ImportLoans extracts loan records from a servicer's JSON export using the
// JSONPath queries of the spec. The records keep the document order.
func ImportLoans(r io.Reader, spec ImportSpec) ([]Loan, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("error parsing export: %w", err)
	}

	jrecords, err := jsonpath.Get(spec.Records, jobj)
	if err != nil {
		return nil, fmt.Errorf("error querying records: %q %w", spec.Records, err)
	}
	records, ok := jrecords.([]any)
	if !ok {
		return nil, fmt.Errorf("error querying records: %q did not select a list", spec.Records)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no loan records found at %q", spec.Records)
	}

	loans := make([]Loan, 0, len(records))
	for i, record := range records {
		name, err := importString(record, spec.Name)
		if err != nil {
			return nil, fmt.Errorf("error in record %d: name: %w", i+1, err)
		}
		principal, err := importNumber(record, spec.Principal)
		if err != nil {
			return nil, fmt.Errorf("error in record %d (%q): principal: %w", i+1, name, err)
		}
		rate, err := importNumber(record, spec.Rate)
		if err != nil {
			return nil, fmt.Errorf("error in record %d (%q): rate: %w", i+1, name, err)
		}
		// min payment is optional in exports, default it to zero.
		minPayment, err := importNumber(record, spec.MinPayment)
		if err != nil {
			minPayment = 0
		}

		loan := NewLoan(name, principal, rate, minPayment)
		if err := loan.Validate(); err != nil {
			return nil, fmt.Errorf("error in record %d: %w", i+1, err)
		}
		loans = append(loans, loan)
	}
	return loans, nil
}

func importValue(record any, path string) (any, error) {
	jval, err := jsonpath.Get(path, record)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func importString(record any, path string) (string, error) {
	jval, err := importValue(record, path)
	if err != nil {
		return "", err
	}
	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing %q: not a string: %v", path, jval)
	}
	return val, nil
}

func importNumber(record any, path string) (float64, error) {
	jval, err := importValue(record, path)
	if err != nil {
		return 0, err
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: not a number: %v", path, jval)
	}
	return val, nil
}
