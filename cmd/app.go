// Package cmd implements the CLI application driving the banking engine.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/avelek/bankist"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sessionCmd{}, "banking")
	c.Register(&demoCmd{}, "banking")
	c.Register(&accountsCmd{}, "banking")

	c.Register(&importCmd{}, "data")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var accountsFile = flag.String("accounts-file", "", "Path to an accounts file (JSONL). Defaults to the built-in demo accounts.")
var verbose = flag.Bool("v", false, "Log engine operations to stderr.")

// loadAccounts reads the accounts file, or falls back to the built-in
// demo data set when none is given.
func loadAccounts() ([]*bankist.Account, error) {
	if *accountsFile == "" {
		return bankist.DefaultAccounts(), nil
	}
	f, err := os.Open(*accountsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open accounts file: %w", err)
	}
	defer f.Close()
	return bankist.DecodeAccounts(f)
}

// loadConfig returns the engine configuration, with optional overrides
// from the environment (a .env file is honoured when present):
//
//	BANKIST_SESSION_TICKS  countdown length started at login
//	BANKIST_LOAN_DELAY     loan processing delay, e.g. "2500ms"
func loadConfig() bankist.Config {
	_ = godotenv.Load() // missing .env is fine
	cfg := bankist.DefaultConfig()
	if s := os.Getenv("BANKIST_SESSION_TICKS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			cfg.SessionTicks = n
		}
	}
	if s := os.Getenv("BANKIST_LOAN_DELAY"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 {
			cfg.LoanDelay = d
		}
	}
	return cfg
}

// newLogger builds the engine logger. Quiet by default; -v switches to a
// human-friendly development logger on stderr.
func newLogger() *zap.Logger {
	if !*verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// printMarkdown renders markdown for the terminal. If rendering fails
// the raw markdown is printed instead.
func printMarkdown(source string) {
	out, err := glamour.Render(source, "auto")
	if err != nil {
		fmt.Print(source)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}
