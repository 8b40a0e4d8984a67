package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/payoff"
	"github.com/etnz/payoff/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	loansFile string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full payoff strategy report" }
func (*reportCmd) Usage() string {
	return `dps report [-l <loans-file>]

  Ranks the loans under the avalanche, snowball and balanced strategies and
  prints the loan summary followed by each priority order.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.loansFile, "l", "", "Loans file to report on. Defaults to the global -loans-file flag.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	loans, err := LoadLoans(c.loansFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading loans: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := payoff.Analyze(loans)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing loans: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Print(renderer.Report(report))
	return subcommands.ExitSuccess
}
