package bankbook

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Bank owns the set of accounts, account-number allocation, and the
// currently selected account that single-account operations apply to.
//
// The selection is transient session state: it is never persisted and a
// restored bank starts with no selection. The bank holds no locks; an
// embedding host with more than one writer must serialize all mutations
// externally.
type Bank struct {
	accounts   map[string]*Account // keyed by account number
	nextNumber int
	selected   *Account
}

// NewBank creates an empty bank. Account numbers are allocated sequentially
// starting at 1.
func NewBank() *Bank {
	return &Bank{
		accounts:   make(map[string]*Account),
		nextNumber: 1,
	}
}

// FormatAccountNumber renders a sequential account id as the zero-padded
// 9-digit identifier, e.g. 1 becomes "000000001".
func FormatAccountNumber(n int) string {
	return fmt.Sprintf("%09d", n)
}

// OpenAccount allocates the next sequential account number, constructs the
// account variant and stores it. The new account is returned; it is not
// selected.
func (b *Bank) OpenAccount(kind AccountKind, opts ...Option) *Account {
	number := FormatAccountNumber(b.nextNumber)
	b.nextNumber++
	a := newAccount(kind, number, opts...)
	b.accounts[number] = a
	return a
}

// Account returns the account with this exact zero-padded number, or nil.
// It does not change the selection.
func (b *Bank) Account(number string) *Account {
	return b.accounts[number]
}

// SelectAccount makes the account with this exact zero-padded number the
// current selection and returns it.
//
// When no account matches, the previous selection is left unchanged and nil
// is returned. Callers that want a miss to clear the selection must do so
// themselves.
func (b *Bank) SelectAccount(number string) *Account {
	a, ok := b.accounts[number]
	if !ok {
		return nil
	}
	b.selected = a
	return a
}

// Selected returns the currently selected account, or nil.
func (b *Bank) Selected() *Account { return b.selected }

// AddTransaction appends a common transaction to the selected account.
// It fails with ErrNoAccountSelected when there is no selection.
func (b *Bank) AddTransaction(amount Money, date Date) error {
	if b.selected == nil {
		return ErrNoAccountSelected
	}
	return b.selected.AddTransaction(amount, date)
}

// ListTransactions returns the selected account's transaction history.
// It fails with ErrNoAccountSelected when there is no selection.
func (b *Bank) ListTransactions() (string, error) {
	if b.selected == nil {
		return "", ErrNoAccountSelected
	}
	return b.selected.ListTransactions(), nil
}

// ApplyPeriodicPosting posts interest (and fees) on the selected account.
// It fails with ErrNoAccountSelected when there is no selection.
func (b *Bank) ApplyPeriodicPosting() error {
	if b.selected == nil {
		return ErrNoAccountSelected
	}
	return b.selected.ApplyPeriodicPosting()
}

// Accounts returns an iterator over all accounts in account-number order.
func (b *Bank) Accounts() iter.Seq[*Account] {
	numbers := slices.Collect(maps.Keys(b.accounts))
	slices.Sort(numbers)
	return func(yield func(*Account) bool) {
		for _, number := range numbers {
			if !yield(b.accounts[number]) {
				return
			}
		}
	}
}

// Summary returns the Display line of every account, in account-number order.
func (b *Bank) Summary() []string {
	lines := make([]string, 0, len(b.accounts))
	for a := range b.Accounts() {
		lines = append(lines, a.Display())
	}
	return lines
}

// Restore registers previously serialized accounts into the bank and resumes
// number allocation after the highest restored number. The selection is
// reset to none.
func (b *Bank) Restore(accounts ...*Account) error {
	for _, a := range accounts {
		if _, dup := b.accounts[a.number]; dup {
			return fmt.Errorf("duplicate account number %q", a.number)
		}
		b.accounts[a.number] = a
		var id int
		if _, err := fmt.Sscanf(a.number, "%d", &id); err != nil {
			return fmt.Errorf("invalid account number %q: %w", a.number, err)
		}
		if id >= b.nextNumber {
			b.nextNumber = id + 1
		}
	}
	b.selected = nil
	return nil
}
