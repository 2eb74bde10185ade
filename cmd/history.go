package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"bankbook"
	"bankbook/renderer"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	account string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list the transactions of an account" }
func (*historyCmd) Usage() string {
	return `bnk history -a <number>

  Lists the transactions of the account from the earliest to the latest, with
  a running balance.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account number, e.g. 000000001.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bank, s, err := loadBank()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bank: %v\n", err)
		return subcommands.ExitFailure
	}
	s.Close()

	a := bank.Account(c.account)
	if a == nil {
		fmt.Fprintf(os.Stderr, "Error: no account %q\n", c.account)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.HistoryMarkdown(bankbook.NewHistoryReport(a)))
	return subcommands.ExitSuccess
}
