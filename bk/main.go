package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/avelek/bankist/cmd"
)

func main() {
	// Shell completion; a no-op unless invoked through the completion
	// hooks installed by `COMP_INSTALL=1 bk`.
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"accounts-file": predict.Files("*.jsonl"),
			"v":             predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"session":  {},
			"demo":     {},
			"accounts": {},
			"import": {
				Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")},
				Args:  predict.Files("*.json"),
			},
		},
	}
	completion.Complete("bk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
