package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"

	"bankbook"
)

// useTempDB points the app database at a throwaway file for the test.
func useTempDB(t *testing.T) {
	t.Helper()
	old := *dbFile
	*dbFile = filepath.Join(t.TempDir(), "bank.db")
	t.Cleanup(func() { *dbFile = old })
}

func args(t *testing.T, argv ...string) *flag.FlagSet {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := f.Parse(append([]string{"--"}, argv...)); err != nil {
		t.Fatalf("parsing %q: %v", argv, err)
	}
	return f
}

func TestOpenTxPostFlow(t *testing.T) {
	useTempDB(t)
	ctx := context.Background()

	open := &openCmd{kind: "savings"}
	if got := open.Execute(ctx, args(t)); got != subcommands.ExitSuccess {
		t.Fatalf("open: exit %v", got)
	}

	tx := &txCmd{account: "000000001", date: "2024-01-05"}
	if got := tx.Execute(ctx, args(t, "100.00")); got != subcommands.ExitSuccess {
		t.Fatalf("tx: exit %v", got)
	}

	post := &postCmd{account: "000000001"}
	if got := post.Execute(ctx, args(t)); got != subcommands.ExitSuccess {
		t.Fatalf("post: exit %v", got)
	}

	// The database carries the state across invocations.
	bank, s, err := loadBank()
	if err != nil {
		t.Fatalf("loadBank: %v", err)
	}
	s.Close()
	a := bank.Account("000000001")
	if a == nil {
		t.Fatal("account missing after flow")
	}
	if got := a.ListTransactions(); got != "2024-01-05, $100.00\n2024-01-31, $0.33" {
		t.Errorf("history after flow: %q", got)
	}
}

func TestPresentErr(t *testing.T) {
	testCases := []struct {
		err  error
		want string
	}{
		{bankbook.ErrNoAccountSelected, "This command requires that you first select an account."},
		{
			&bankbook.OverdrawError{Balance: bankbook.MustParseMoney("50.00"), Amount: bankbook.MustParseMoney("-60.00")},
			"Transactions cannot overdraw the account balance of $50.00.",
		},
		{
			&bankbook.TransactionSequenceError{Reference: bankbook.MustParseDate("2024-01-10")},
			"New transactions must be from 2024-01-10 onward.",
		},
		{
			&bankbook.TransactionSequenceError{Reference: bankbook.MustParseDate("2024-01-31"), Periodic: true},
			"Interest and fees were already applied in January.",
		},
		{
			&bankbook.TransactionLimitError{Scope: bankbook.LimitDay, Limit: 2},
			"This account already has 2 transactions this day.",
		},
	}
	for _, tc := range testCases {
		if got := presentErr(tc.err); got != tc.want {
			t.Errorf("presentErr(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestTxRejectsBadInput(t *testing.T) {
	useTempDB(t)
	ctx := context.Background()

	tx := &txCmd{account: "000000001", date: "2024-01-05"}
	if got := tx.Execute(ctx, args(t)); got != subcommands.ExitUsageError {
		t.Errorf("tx without amount: exit %v, want usage error", got)
	}
	if got := tx.Execute(ctx, args(t, "lots")); got != subcommands.ExitUsageError {
		t.Errorf("tx with bad amount: exit %v, want usage error", got)
	}

	// The account does not exist yet.
	if got := tx.Execute(ctx, args(t, "100.00")); got != subcommands.ExitUsageError {
		t.Errorf("tx on missing account: exit %v, want usage error", got)
	}
}

func TestOverdrawIsReportedAsFailure(t *testing.T) {
	useTempDB(t)
	ctx := context.Background()

	open := &openCmd{kind: "checking"}
	if got := open.Execute(ctx, args(t)); got != subcommands.ExitSuccess {
		t.Fatalf("open: exit %v", got)
	}
	tx := &txCmd{account: "000000001", date: "2024-01-05"}
	if got := tx.Execute(ctx, args(t, "-10.00")); got != subcommands.ExitFailure {
		t.Errorf("overdraw: exit %v, want failure", got)
	}
}
