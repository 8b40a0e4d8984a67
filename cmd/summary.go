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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	loansFile string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the loan summary and rankings as markdown" }
func (*summaryCmd) Usage() string {
	return `dps summary [-l <loans-file>]

  Displays the loan summary (total debt, total monthly interest, extremal
  loans) and the three priority orders, rendered for the terminal.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.loansFile, "l", "", "Loans file to report on. Defaults to the global -loans-file flag.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
