package bankbook

import "fmt"

// TransactionKind is a typed string identifying how a transaction was posted.
type TransactionKind string

// Transaction kinds recorded in an account.
const (
	// Common is a user-initiated deposit or withdrawal.
	Common TransactionKind = "common"
	// Interest is a periodic interest posting computed by the account.
	Interest TransactionKind = "interest"
	// Fee is a low-balance fee posting (checking accounts only).
	Fee TransactionKind = "fee"
)

// ParseTransactionKind parses a string into a TransactionKind.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(s) {
	case Common, Interest, Fee:
		return TransactionKind(s), nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction is an immutable record of a single posting on an account.
//
// Seq is the 0-based insertion index assigned by the owning account at append
// time. It is unique within that account's sequence only, and breaks ties
// between transactions sharing a date.
type Transaction struct {
	Date   Date
	Seq    int
	Amount Money
	Kind   TransactionKind
}

// Compare orders transactions by date ascending, then by sequence id
// ascending. This total order is stable and is the one used for display
// and for sequence validation.
func (t Transaction) Compare(o Transaction) int {
	if c := t.Date.Compare(o.Date); c != 0 {
		return c
	}
	return t.Seq - o.Seq
}

// Equal reports whether two transactions are the same record.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date && t.Seq == o.Seq && t.Kind == o.Kind && t.Amount.Equal(o.Amount)
}

// String formats the date and amount of this transaction, e.g.
// "2024-01-05, $100.00".
func (t Transaction) String() string {
	return fmt.Sprintf("%s, %s", t.Date, t.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("seq", t.Seq)
	w.Append("amount", t.Amount)
	w.Append("kind", t.Kind)
	return w.MarshalJSON()
}
