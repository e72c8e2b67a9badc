package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/avelek/bankist"
)

type importCmd struct {
	output string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import accounts from a foreign JSON export" }
func (*importCmd) Usage() string {
	return `bk import [-o <file>] <export.json>

  Reads the upstream banking API export format and converts its accounts
  to the JSONL accounts file this tool reads with -accounts-file.
  Writes to stdout unless -o is given.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output accounts file (JSONL). Defaults to stdout.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one export file is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(fmt.Errorf("could not open export file: %w", err))
	}
	defer in.Close()

	accounts, err := bankist.ImportAccountsJSON(in)
	if err != nil {
		return fail(err)
	}

	out := os.Stdout
	if p.output != "" {
		out, err = os.Create(p.output)
		if err != nil {
			return fail(fmt.Errorf("could not create output file: %w", err))
		}
		defer out.Close()
	}
	if err := bankist.EncodeAccounts(out, accounts...); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Imported %d accounts.\n", len(accounts))
	return subcommands.ExitSuccess
}
