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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display every account with its balance" }
func (*summaryCmd) Usage() string {
	return `bnk summary

  Displays all accounts with their current balance, in account-number order.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bank, s, err := loadBank()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bank: %v\n", err)
		return subcommands.ExitFailure
	}
	s.Close()

	printMarkdown(renderer.SummaryMarkdown(bankbook.NewSummaryReport(bank)))
	return subcommands.ExitSuccess
}
