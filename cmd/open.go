package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"bankbook"
)

// openCmd holds the flags for the 'open' subcommand.
type openCmd struct {
	kind string
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a new account" }
func (*openCmd) Usage() string {
	return `bnk open -k <checking|savings>

  Opens a new account of the given kind and prints its number.
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "checking", "Kind of account to open (checking or savings).")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := bankbook.ParseAccountKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	bank, s, err := loadBank()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bank: %v\n", err)
		return subcommands.ExitFailure
	}

	a := bank.OpenAccount(kind)
	if err := saveBank(s, bank); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving bank: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(a.Display())
	return subcommands.ExitSuccess
}
