// Package cmd implements the CLI application to analyze loan payoff strategies.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/payoff"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the dps binary.
// A main package registers them all and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&summaryCmd{},
	&importCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var loansFile = flag.String("loans-file", "loans.jsonl", "Path to the loans file (JSONL format)")

// LoadLoans reads the loan set from 'path', or from the app loans file when
// 'path' is empty.
func LoadLoans(path string) ([]payoff.Loan, error) {
	if path == "" {
		path = *loansFile
	}
	return payoff.LoadLoans(path)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
