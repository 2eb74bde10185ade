package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// postCmd holds the flags for the 'post' subcommand.
type postCmd struct {
	account string
}

func (*postCmd) Name() string     { return "post" }
func (*postCmd) Synopsis() string { return "post periodic interest and fees on an account" }
func (*postCmd) Usage() string {
	return `bnk post -a <number>

  Posts the periodic interest (and, for checking accounts, the low balance
  fee) at the end of the account's latest transaction month. Posting the same
  month twice is rejected.
`
}

func (c *postCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account number, e.g. 000000001.")
}

func (c *postCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := bank.ApplyPeriodicPosting(); err != nil {
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
