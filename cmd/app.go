// Package cmd implements the CLI application to manage a bank.
package cmd

import (
	"errors"
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"bankbook"
	"bankbook/store"
)

// Register the subcommands.
// A main package calls Register() to expose the subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&openCmd{}, "accounts")
	c.Register(&summaryCmd{}, "accounts")

	c.Register(&txCmd{}, "transactions")
	c.Register(&historyCmd{}, "transactions")
	c.Register(&postCmd{}, "transactions")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var dbFile = flag.String("db", "bank.db", "Path to the bank database (SQLite)")

// openStore opens the app database.
func openStore() (*store.Store, error) {
	return store.Open(*dbFile)
}

// loadBank opens the app database and restores the bank from it. A missing
// database yields an empty bank.
func loadBank() (*bankbook.Bank, *store.Store, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	b, err := s.LoadBank()
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return b, s, nil
}

// saveBank writes the bank back and releases the database.
func saveBank(s *store.Store, b *bankbook.Bank) error {
	defer s.Close()
	return s.SaveBank(b)
}

// presentErr maps core errors to the sentences shown to the user; errors with
// no dedicated wording pass through unchanged.
func presentErr(err error) string {
	var overdraw *bankbook.OverdrawError
	var seq *bankbook.TransactionSequenceError
	var limit *bankbook.TransactionLimitError
	switch {
	case errors.Is(err, bankbook.ErrNoAccountSelected):
		return "This command requires that you first select an account."
	case errors.As(err, &overdraw):
		return fmt.Sprintf("Transactions cannot overdraw the account balance of %s.", overdraw.Balance)
	case errors.As(err, &seq) && seq.Periodic:
		return fmt.Sprintf("Interest and fees were already applied in %s.", seq.Reference.Format("January"))
	case errors.As(err, &seq):
		return fmt.Sprintf("New transactions must be from %s onward.", seq.Reference)
	case errors.As(err, &limit):
		return fmt.Sprintf("This account already has %d transactions this %s.", limit.Limit, limit.Scope)
	default:
		return err.Error()
	}
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer fails.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
