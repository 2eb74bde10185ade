package bankbook

import (
	"errors"
	"testing"
)

func TestSavings_DailyLimit(t *testing.T) {
	a := newAccount(Savings, "000000001")

	// Two same-day transactions fit the default daily limit of 2.
	if err := a.AddTransaction(amt("100.00"), day("2024-01-05")); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := a.AddTransaction(amt("50.00"), day("2024-01-05")); err != nil {
		t.Fatalf("second add: %v", err)
	}

	err := a.AddTransaction(amt("25.00"), day("2024-01-05"))
	var limitErr *TransactionLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("third same-day add: got %v, want *TransactionLimitError", err)
	}
	if limitErr.Scope != LimitDay || limitErr.Limit != 2 {
		t.Errorf("got scope=%q limit=%d, want day/2", limitErr.Scope, limitErr.Limit)
	}
	if got := a.Balance(); !got.Equal(amt("150.00")) {
		t.Errorf("balance = %s, want 150.00", got)
	}
}

func TestSavings_MonthlyLimit(t *testing.T) {
	a := newAccount(Savings, "000000001")

	// Five transactions spread over the month fill the monthly limit.
	days := []string{"2024-01-02", "2024-01-02", "2024-01-10", "2024-01-10", "2024-01-20"}
	for _, d := range days {
		if err := a.AddTransaction(amt("10.00"), day(d)); err != nil {
			t.Fatalf("AddTransaction(%s): %v", d, err)
		}
	}

	err := a.AddTransaction(amt("10.00"), day("2024-01-25"))
	var limitErr *TransactionLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("sixth add: got %v, want *TransactionLimitError", err)
	}
	if limitErr.Scope != LimitMonth || limitErr.Limit != 5 {
		t.Errorf("got scope=%q limit=%d, want month/5", limitErr.Scope, limitErr.Limit)
	}

	// The next month starts a fresh count.
	if err := a.AddTransaction(amt("10.00"), day("2024-02-01")); err != nil {
		t.Errorf("add in next month: %v", err)
	}
}

func TestSavings_DailyLimitCheckedBeforeMonthly(t *testing.T) {
	a := newAccount(Savings, "000000001", WithMonthlyLimit(2))

	if err := a.AddTransaction(amt("10.00"), day("2024-01-05")); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := a.AddTransaction(amt("10.00"), day("2024-01-05")); err != nil {
		t.Fatalf("second add: %v", err)
	}

	// Both caps are hit; the daily one is reported.
	err := a.AddTransaction(amt("10.00"), day("2024-01-05"))
	var limitErr *TransactionLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("got %v, want *TransactionLimitError", err)
	}
	if limitErr.Scope != LimitDay {
		t.Errorf("got scope=%q, want day", limitErr.Scope)
	}
}

func TestSavings_InterestPosting(t *testing.T) {
	a := newAccount(Savings, "000000001")
	if err := a.AddTransaction(amt("100.00"), day("2024-01-05")); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	if err := a.ApplyPeriodicPosting(); err != nil {
		t.Fatalf("ApplyPeriodicPosting: %v", err)
	}

	// 100.00 * 0.33% = 0.33, dated at the January month end.
	want := "2024-01-05, $100.00\n2024-01-31, $0.33"
	if got := a.ListTransactions(); got != want {
		t.Errorf("ListTransactions() = %q, want %q", got, want)
	}

	err := a.ApplyPeriodicPosting()
	var seqErr *TransactionSequenceError
	if !errors.As(err, &seqErr) {
		t.Fatalf("second posting: got %v, want *TransactionSequenceError", err)
	}
	if !seqErr.Periodic {
		t.Error("want periodic sequence error")
	}
}

func TestSavings_InterestBypassesFrequencyLimits(t *testing.T) {
	// Fill both the daily and the monthly caps, then post interest: the
	// posting must go through anyway.
	a := newAccount(Savings, "000000001", WithDailyLimit(1), WithMonthlyLimit(1))
	if err := a.AddTransaction(amt("100.00"), day("2024-01-31")); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	if err := a.ApplyPeriodicPosting(); err != nil {
		t.Errorf("interest posting hit a frequency limit: %v", err)
	}
	if got := a.Balance(); !got.Equal(amt("100.33")) {
		t.Errorf("balance = %s, want 100.33", got)
	}
}

func TestSavings_PostingsCountTowardLimits(t *testing.T) {
	// An interest posting occupies a slot in the month it lands in.
	a := newAccount(Savings, "000000001", WithMonthlyLimit(2))
	if err := a.AddTransaction(amt("100.00"), day("2024-01-05")); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	if err := a.ApplyPeriodicPosting(); err != nil {
		t.Fatalf("ApplyPeriodicPosting: %v", err)
	}

	// The interest posting of 2024-01-31 is the second January transaction.
	err := a.AddTransaction(amt("10.00"), day("2024-01-31"))
	var limitErr *TransactionLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("got %v, want *TransactionLimitError", err)
	}
	if limitErr.Scope != LimitMonth || limitErr.Limit != 2 {
		t.Errorf("got scope=%q limit=%d, want month/2", limitErr.Scope, limitErr.Limit)
	}
}
