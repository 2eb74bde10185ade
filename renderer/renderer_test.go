package renderer

import (
	"strings"
	"testing"

	"bankbook"
)

func mustAdd(t *testing.T, a *bankbook.Account, amount, date string) {
	t.Helper()
	if err := a.AddTransaction(bankbook.MustParseMoney(amount), bankbook.MustParseDate(date)); err != nil {
		t.Fatalf("AddTransaction(%s, %s): %v", amount, date, err)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	b := bankbook.NewBank()
	b.OpenAccount(bankbook.Checking)
	s := b.OpenAccount(bankbook.Savings)
	b.SelectAccount(s.Number())
	mustAdd(t, s, "1234.50", "2024-01-05")

	got := SummaryMarkdown(bankbook.NewSummaryReport(b))

	for _, want := range []string{
		"# Bank Summary",
		"000000001",
		"Checking",
		"$0.00",
		"000000002 (selected)",
		"Savings",
		"$1,234.50",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q in:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	got := SummaryMarkdown(bankbook.NewSummaryReport(bankbook.NewBank()))
	if !strings.Contains(got, "No accounts.") {
		t.Errorf("empty summary missing placeholder:\n%s", got)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	b := bankbook.NewBank()
	a := b.OpenAccount(bankbook.Savings)
	mustAdd(t, a, "100.00", "2024-01-05")
	mustAdd(t, a, "-25.00", "2024-01-06")

	got := HistoryMarkdown(bankbook.NewHistoryReport(a))

	for _, want := range []string{
		"# History for Savings#000000001",
		"2024-01-05",
		"2024-01-06",
		"common",
		"$-25.00",
		"$75.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("history missing %q in:\n%s", want, got)
		}
	}
}

func TestHistoryMarkdown_Empty(t *testing.T) {
	b := bankbook.NewBank()
	a := b.OpenAccount(bankbook.Checking)
	got := HistoryMarkdown(bankbook.NewHistoryReport(a))
	if !strings.Contains(got, "No transactions.") {
		t.Errorf("empty history missing placeholder:\n%s", got)
	}
}
