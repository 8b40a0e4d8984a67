package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/payoff"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	loansFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the loans file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `dps fmt [-l <loans-file>]

  Validates and formats the loans file. This command reads all loans,
  validates them, and writes them back in a canonical JSONL format. The
  record order is preserved: it breaks ties in the rankings.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.loansFile, "l", "", "Loans file to format. Defaults to the global -loans-file flag.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := c.loansFile
	if path == "" {
		path = *loansFile
	}

	loans, err := payoff.LoadLoans(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load loans: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := payoff.SaveLoans(path, loans); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted loans file %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %d loans in %q.\n", len(loans), path)
	return subcommands.ExitSuccess
}
