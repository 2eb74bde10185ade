package bankbook

import (
	"errors"
	"fmt"
)

// ErrNoAccountSelected is returned by Bank operations that require a
// selected account when no selection has been made.
var ErrNoAccountSelected = errors.New("no account selected")

// ErrNoPostingAnchor is returned by ApplyPeriodicPosting on an account with
// no transactions: there is no month to anchor the posting period on.
var ErrNoPostingAnchor = errors.New("account has no transactions to anchor a posting period")

// OverdrawError reports an attempted transaction that would drive the
// account balance negative. The account is left unchanged.
type OverdrawError struct {
	Balance Money // balance before the attempted transaction
	Amount  Money // the rejected amount
}

func (e *OverdrawError) Error() string {
	return fmt.Sprintf("transaction of %s would overdraw balance of %s", e.Amount, e.Balance)
}

// TransactionSequenceError reports a violation of the append-only
// chronological order: either a new transaction dated before the latest
// existing one, or a periodic posting for a period that was already posted.
type TransactionSequenceError struct {
	// Reference is the blocking date: the latest existing transaction date,
	// or the month-end date of the period already posted.
	Reference Date
	// Periodic is true when a periodic posting was attempted twice for the
	// same period.
	Periodic bool
}

func (e *TransactionSequenceError) Error() string {
	if e.Periodic {
		return fmt.Sprintf("interest and fees already applied in %s", e.Reference.Format("January"))
	}
	return fmt.Sprintf("new transactions must be dated %s or later", e.Reference)
}

// Scopes reported by TransactionLimitError.
const (
	LimitDay   = "day"
	LimitMonth = "month"
)

// TransactionLimitError reports that a savings account reached its daily or
// monthly transaction-frequency cap.
type TransactionLimitError struct {
	Scope string // LimitDay or LimitMonth
	Limit int
}

func (e *TransactionLimitError) Error() string {
	return fmt.Sprintf("account already has %d transactions in this %s", e.Limit, e.Scope)
}
