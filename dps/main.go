package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/payoff/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs and exits here when invoked by the shell.
	completion().Complete("dps")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for the shell completion engine.
func completion() *complete.Command {
	loansFiles := predict.Files("*.jsonl")
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"loans-file": loansFiles,
		},
		Sub: map[string]*complete.Command{
			"report":  {Flags: map[string]complete.Predictor{"l": loansFiles}},
			"summary": {Flags: map[string]complete.Predictor{"l": loansFiles}},
			"fmt":     {Flags: map[string]complete.Predictor{"l": loansFiles}},
			"import": {Flags: map[string]complete.Predictor{
				"i":           predict.Files("*.json"),
				"o":           loansFiles,
				"records":     predict.Nothing,
				"name":        predict.Nothing,
				"principal":   predict.Nothing,
				"rate":        predict.Nothing,
				"min-payment": predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "avalanche", "snowball", "balanced", "file-format"}},
		},
	}
}
