package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/avelek/bankist"
	"github.com/avelek/bankist/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the accounts in the ledger" }
func (*accountsCmd) Usage() string {
	return `bk accounts [-accounts-file <file>]

  Lists owner, derived username, balance and interest rate for every
  account in the ledger, in original order.
`
}

func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (p *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accounts, err := loadAccounts()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AccountsMarkdown(bankist.NewLedger(accounts...)))
	return subcommands.ExitSuccess
}
