package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/payoff"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input  string
	output string
	spec   payoff.ImportSpec
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import loans from a servicer JSON export" }
func (*importCmd) Usage() string {
	return `dps import -i <export.json> [-o <loans-file>] [-records <jsonpath>] ...

  Extracts loan records from a loan servicer's JSON export and writes them to
  the loans file in canonical JSONL form. The JSONPath queries default to the
  {"loans":[{name,principal,rate,min_payment}]} shape and can be overridden
  per field for other export shapes.

Usage Examples:
# Import from a servicer export into the default loans file.
$ dps import -i export.json

# Import from an export that nests records under "accounts".
$ dps import -i export.json -records '$.accounts[*]' -principal '$.balance'
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	def := payoff.DefaultImportSpec
	f.StringVar(&c.input, "i", "", "Path to the JSON export to import (required)")
	f.StringVar(&c.output, "o", "", "Loans file to write. Defaults to the global -loans-file flag.")
	f.StringVar(&c.spec.Records, "records", def.Records, "JSONPath selecting the loan records")
	f.StringVar(&c.spec.Name, "name", def.Name, "JSONPath selecting the loan name within a record")
	f.StringVar(&c.spec.Principal, "principal", def.Principal, "JSONPath selecting the principal within a record")
	f.StringVar(&c.spec.Rate, "rate", def.Rate, "JSONPath selecting the annual rate within a record")
	f.StringVar(&c.spec.MinPayment, "min-payment", def.MinPayment, "JSONPath selecting the minimum payment within a record")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i <export.json> is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	loans, err := payoff.ImportLoans(in, c.spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing loans from %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	output := c.output
	if output == "" {
		output = *loansFile
	}
	if err := payoff.SaveLoans(output, loans); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing loans file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully imported %d loans into %s\n", len(loans), output)
	return subcommands.ExitSuccess
}
