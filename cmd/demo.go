package cmd

import (
	"context"
	"flag"
	"fmt"
	"sync"
	"time"

	"github.com/google/subcommands"

	"github.com/avelek/bankist"
	"github.com/avelek/bankist/renderer"
)

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run a scripted walkthrough of the banking operations" }
func (*demoCmd) Usage() string {
	return `bk demo

  Runs a scripted session against the built-in demo accounts: login,
  transfer, deferred loan, sorted view. Useful to see every operation
  without typing.
`
}

func (*demoCmd) SetFlags(*flag.FlagSet) {}

func (p *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()
	cfg.LoanDelay = 500 * time.Millisecond // keep the walkthrough short
	engine := bankist.NewEngine(bankist.NewLedger(bankist.DefaultAccounts()...), cfg, newLogger())

	var settled sync.WaitGroup
	engine.OnLoanSettled(func(res bankist.LoanResult) {
		fmt.Printf("...loan of %s credited to %s\n", res.Amount, res.Username)
		settled.Done()
	})

	fmt.Println("$ login js 1111")
	view, err := engine.Login("js", "1111")
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AccountMarkdown(view))

	fmt.Println("$ transfer jd 500")
	if view, applied := engine.Transfer("jd", "500"); applied {
		printMarkdown(renderer.AccountMarkdown(view))
	}

	fmt.Println("$ loan 2000")
	settled.Add(1)
	if engine.RequestLoan("2000") {
		fmt.Println("loan approved, processing...")
		settled.Wait()
		printMarkdown(renderer.AccountMarkdown(engine.CurrentView()))
	} else {
		settled.Done()
	}

	fmt.Println("$ sort")
	printMarkdown(renderer.MovementsMarkdown(engine.ToggleSort()))

	return subcommands.ExitSuccess
}
