package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/avelek/bankist"
	"github.com/avelek/bankist/renderer"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "run an interactive banking session" }
func (*sessionCmd) Usage() string {
	return `bk session [-accounts-file <file>] [-v]

  Starts an interactive session over the in-memory ledger. Commands:

    login <username> <pin>      log in and start the session countdown
    transfer <to> <amount>      transfer to another account
    loan <amount>               request a loan (credited after a delay)
    close <username> <pin>      close the active account
    sort                        toggle sorting movements by amount
    view                        reprint the account view
    timer                       show the seconds left before logout
    quit                        leave

  The session expires after a fixed number of seconds of countdown; only
  logging in again restarts it.
`
}

func (*sessionCmd) SetFlags(*flag.FlagSet) {}

func (p *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accounts, err := loadAccounts()
	if err != nil {
		return fail(err)
	}
	engine := bankist.NewEngine(bankist.NewLedger(accounts...), loadConfig(), newLogger())

	engine.OnExpired(func() {
		fmt.Println("\nYour session has expired. Log in again to continue.")
		fmt.Print("> ")
	})
	engine.OnLoanSettled(func(res bankist.LoanResult) {
		if errors.Is(res.Err, bankist.ErrTargetAccountGone) {
			fmt.Printf("\nLoan for %s dropped: account no longer exists.\n> ", res.Username)
			return
		}
		fmt.Printf("\nLoan of %s credited to %s.\n> ", res.Amount, res.Username)
	})

	fmt.Println("Log in to get started. Type 'help' for commands.")
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Print("> ")
			continue
		}
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			break
		}
		p.dispatch(engine, cmd, args)
		fmt.Print("> ")
	}
	return subcommands.ExitSuccess
}

func (p *sessionCmd) dispatch(engine *bankist.Engine, cmd string, args []string) {
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	switch cmd {
	case "login":
		view, err := engine.Login(arg(0), arg(1))
		if err != nil {
			fmt.Println("Wrong username or PIN.")
			return
		}
		go tickSession(engine, engine.TimerEpoch())
		printMarkdown(renderer.AccountMarkdown(view))

	case "transfer":
		view, applied := engine.Transfer(arg(0), arg(1))
		if !applied {
			fmt.Println("Nothing happened.")
			return
		}
		printMarkdown(renderer.AccountMarkdown(view))

	case "loan":
		if !engine.RequestLoan(arg(0)) {
			fmt.Println("Nothing happened.")
			return
		}
		fmt.Println("Loan approved, processing...")

	case "close":
		if !engine.CloseAccount(arg(0), arg(1)) {
			fmt.Println("Nothing happened.")
			return
		}
		fmt.Println("Account closed. Goodbye.")

	case "sort":
		view := engine.ToggleSort()
		if view == nil {
			fmt.Println("Log in first.")
			return
		}
		printMarkdown(renderer.MovementsMarkdown(view))

	case "view":
		view := engine.CurrentView()
		if view == nil {
			fmt.Println("Log in first.")
			return
		}
		printMarkdown(renderer.AccountMarkdown(view))

	case "timer":
		fmt.Printf("%d seconds left.\n", engine.Remaining())

	case "help":
		fmt.Print(p.Usage())

	default:
		fmt.Printf("Unknown command %q. Type 'help'.\n", cmd)
	}
}

// tickSession drives the countdown started by a login, one tick per
// second of wall-clock time. It exits as soon as the engine reports the
// countdown is no longer live: expired, stopped, or replaced by a newer
// login.
func tickSession(engine *bankist.Engine, epoch int) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		if !engine.Tick(epoch) {
			return
		}
	}
}
