package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"bankbook"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	account string
	date    string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a transaction on an account" }
func (*txCmd) Usage() string {
	return `bnk tx -a <number> [-d <date>] <amount>

  Records a deposit (positive amount) or a withdrawal (negative amount) on the
  account. The date defaults to today and may not precede the account's latest
  transaction.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account number, e.g. 000000001.")
	f.StringVar(&c.date, "d", time.Now().Format("2006-01-02"), "Date of the transaction (YYYY-MM-DD).")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one amount argument.")
		return subcommands.ExitUsageError
	}
	amount, err := bankbook.ParseMoney(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	date, err := bankbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	bank, s, err := loadBank()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bank: %v\n", err)
		return subcommands.ExitFailure
	}

	if bank.SelectAccount(c.account) == nil {
		s.Close()
		fmt.Fprintf(os.Stderr, "Error: no account %q\n", c.account)
		return subcommands.ExitUsageError
	}
	if err := bank.AddTransaction(amount, date); err != nil {
		s.Close()
		fmt.Fprintf(os.Stderr, "Error: %s\n", presentErr(err))
		return subcommands.ExitFailure
	}
	if err := saveBank(s, bank); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving bank: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(bank.Selected().Display())
	return subcommands.ExitSuccess
}
