package bankbook

import (
	"fmt"
	"iter"
	"regexp"
	"slices"
	"strings"
)

// AccountKind is a typed string identifying the account variant.
type AccountKind string

// Account kinds.
const (
	Checking AccountKind = "checking"
	Savings  AccountKind = "savings"
)

// ParseAccountKind parses a string into an AccountKind.
func ParseAccountKind(s string) (AccountKind, error) {
	switch AccountKind(strings.ToLower(strings.TrimSpace(s))) {
	case Checking:
		return Checking, nil
	case Savings:
		return Savings, nil
	default:
		return "", fmt.Errorf("unknown account kind: %q", s)
	}
}

// Title returns the capitalized kind name used in account displays.
func (k AccountKind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[0])) + string(k[1:])
}

var accountNumberRE = regexp.MustCompile(`^\d{9}$`)

// Account owns an ordered collection of transactions and the rules governing
// which transactions may be appended.
//
// The Checking/Savings variants share this transaction-list core; the
// kind-specific posting rules and limits live in the rules struct matching
// the kind, and operations dispatch on the kind tag.
type Account struct {
	number       string
	kind         AccountKind
	transactions []Transaction // in insertion order; Seq equals the index

	checking checkingRules // rules when kind is Checking
	savings  savingsRules  // rules when kind is Savings
}

// Option customizes an account's kind-specific parameters at construction.
type Option func(*Account)

// WithInterestRate overrides the account's periodic interest rate.
func WithInterestRate(r Rate) Option {
	return func(a *Account) {
		a.checking.interestRate = r
		a.savings.interestRate = r
	}
}

// WithDailyLimit overrides a savings account's daily transaction cap.
func WithDailyLimit(n int) Option {
	return func(a *Account) { a.savings.dailyLimit = n }
}

// WithMonthlyLimit overrides a savings account's monthly transaction cap.
func WithMonthlyLimit(n int) Option {
	return func(a *Account) { a.savings.monthlyLimit = n }
}

// WithLowBalanceThreshold overrides the balance at or below which a checking
// account is charged the low-balance fee.
func WithLowBalanceThreshold(m Money) Option {
	return func(a *Account) { a.checking.lowBalanceThreshold = m }
}

// WithLowBalanceFee overrides the (negative) fee amount a checking account
// posts when its balance is low.
func WithLowBalanceFee(m Money) Option {
	return func(a *Account) { a.checking.lowBalanceFee = m }
}

// newAccount builds an account with default rules for its kind.
// The number is assumed already validated by the caller.
func newAccount(kind AccountKind, number string, opts ...Option) *Account {
	a := &Account{
		number:   number,
		kind:     kind,
		checking: defaultCheckingRules(),
		savings:  defaultSavingsRules(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RestoreAccount rebuilds an account from previously serialized state.
//
// Transactions may be provided in any order; they are reinstated in
// insertion order, which must be a contiguous sequence id run starting at 0.
func RestoreAccount(kind AccountKind, number string, txs []Transaction, opts ...Option) (*Account, error) {
	if _, err := ParseAccountKind(string(kind)); err != nil {
		return nil, err
	}
	if !accountNumberRE.MatchString(number) {
		return nil, fmt.Errorf("invalid account number %q: want 9 digits", number)
	}
	a := newAccount(kind, number, opts...)

	ordered := slices.Clone(txs)
	slices.SortFunc(ordered, func(x, y Transaction) int { return x.Seq - y.Seq })
	for i, tx := range ordered {
		if tx.Seq != i {
			return nil, fmt.Errorf("account %s: transaction sequence ids are not contiguous: want %d got %d", number, i, tx.Seq)
		}
		if _, err := ParseTransactionKind(string(tx.Kind)); err != nil {
			return nil, fmt.Errorf("account %s: %w", number, err)
		}
	}
	a.transactions = ordered
	return a, nil
}

// Number returns the account's immutable zero-padded 9-digit identifier.
func (a *Account) Number() string { return a.number }

// Kind returns the account variant.
func (a *Account) Kind() AccountKind { return a.kind }

// InterestRate returns the account's periodic interest rate.
func (a *Account) InterestRate() Rate {
	if a.kind == Checking {
		return a.checking.interestRate
	}
	return a.savings.interestRate
}

// DailyLimit returns a savings account's daily transaction cap, 0 otherwise.
func (a *Account) DailyLimit() int {
	if a.kind != Savings {
		return 0
	}
	return a.savings.dailyLimit
}

// MonthlyLimit returns a savings account's monthly transaction cap, 0 otherwise.
func (a *Account) MonthlyLimit() int {
	if a.kind != Savings {
		return 0
	}
	return a.savings.monthlyLimit
}

// LowBalanceThreshold returns a checking account's low-balance threshold,
// zero Money otherwise.
func (a *Account) LowBalanceThreshold() Money {
	if a.kind != Checking {
		return Money{}
	}
	return a.checking.lowBalanceThreshold
}

// LowBalanceFee returns a checking account's low-balance fee, zero Money otherwise.
func (a *Account) LowBalanceFee() Money {
	if a.kind != Checking {
		return Money{}
	}
	return a.checking.lowBalanceFee
}

// Balance returns the exact sum of all transaction amounts, $0.00 when empty.
func (a *Account) Balance() Money {
	var balance Money
	for _, tx := range a.transactions {
		balance = balance.Add(tx.Amount)
	}
	return balance
}

// LatestTransactionDate returns the greatest transaction date among
// transactions matching the kind filter. An empty filter matches every kind.
// The boolean is false when no transaction matches.
func (a *Account) LatestTransactionDate(kinds ...TransactionKind) (Date, bool) {
	var latest Date
	var found bool
	for _, tx := range a.transactions {
		if len(kinds) > 0 && !slices.Contains(kinds, tx.Kind) {
			continue
		}
		if !found || tx.Date.After(latest) {
			latest, found = tx.Date, true
		}
	}
	return latest, found
}

// Display shows the account type, number and current balance, e.g.
// "Savings#000000001,\tbalance: $150.00".
func (a *Account) Display() string {
	return fmt.Sprintf("%s#%s,\tbalance: %s", a.kind.Title(), a.number, a.Balance())
}

// ListTransactions returns the transactions from the earliest to the latest,
// one per line, without a trailing newline. The order is the total
// (date, sequence id) order regardless of insertion order.
func (a *Account) ListTransactions() string {
	lines := make([]string, 0, len(a.transactions))
	for tx := range a.Transactions() {
		lines = append(lines, tx.String())
	}
	return strings.Join(lines, "\n")
}

// Transactions returns an iterator over the account's transactions in the
// total (date, sequence id) order.
func (a *Account) Transactions() iter.Seq[Transaction] {
	sorted := slices.Clone(a.transactions)
	slices.SortFunc(sorted, Transaction.Compare)
	return func(yield func(Transaction) bool) {
		for _, tx := range sorted {
			if !yield(tx) {
				return
			}
		}
	}
}

// AddTransaction appends a Common transaction of the given amount and date.
//
// It fails with a *TransactionSequenceError when the date precedes the
// latest existing common transaction (backdating is rejected), with an
// *OverdrawError when the resulting balance would be negative, and for
// savings accounts with a *TransactionLimitError when the daily or monthly
// frequency cap is reached. A failed add leaves the account unchanged.
func (a *Account) AddTransaction(amount Money, date Date) error {
	if latest, ok := a.LatestTransactionDate(Common); ok && date.Before(latest) {
		return &TransactionSequenceError{Reference: latest}
	}
	if a.Balance().Add(amount).IsNegative() {
		return &OverdrawError{Balance: a.Balance(), Amount: amount}
	}
	if a.kind == Savings {
		if err := a.checkSavingsLimits(date); err != nil {
			return err
		}
	}
	a.append(date, amount, Common)
	return nil
}

// ApplyPeriodicPosting computes and appends the account's interest posting
// (and, for checking accounts, possibly a low-balance fee), dated the last
// calendar day of the month containing the latest common transaction.
//
// It fails with ErrNoPostingAnchor when the account has no transactions, and
// with a *TransactionSequenceError when a posting was already made for that
// or a later month.
func (a *Account) ApplyPeriodicPosting() error {
	switch a.kind {
	case Checking:
		return a.postCheckingInterestAndFees()
	case Savings:
		return a.postSavingsInterest()
	default:
		return fmt.Errorf("unknown account kind: %q", a.kind)
	}
}

// postingDate resolves the month-end date anchoring the next posting period
// and guards against double posting within one period.
func (a *Account) postingDate() (Date, error) {
	anchor, ok := a.LatestTransactionDate(Common)
	if !ok {
		return Date{}, ErrNoPostingAnchor
	}
	posting := anchor.EndOfMonth()
	if last, ok := a.LatestTransactionDate(Interest); ok && !posting.After(last) {
		return Date{}, &TransactionSequenceError{Reference: posting, Periodic: true}
	}
	return posting, nil
}

// append records a transaction, assigning the next sequence id.
func (a *Account) append(date Date, amount Money, kind TransactionKind) Transaction {
	tx := Transaction{Date: date, Seq: len(a.transactions), Amount: amount, Kind: kind}
	a.transactions = append(a.transactions, tx)
	return tx
}

// countOn counts transactions of any kind dated exactly on the given day.
func (a *Account) countOn(date Date) int {
	count := 0
	for _, tx := range a.transactions {
		if tx.Date == date {
			count++
		}
	}
	return count
}

// countInMonth counts transactions of any kind within the given day's
// calendar month.
func (a *Account) countInMonth(date Date) int {
	count := 0
	for _, tx := range a.transactions {
		if tx.Date.SameMonth(date) {
			count++
		}
	}
	return count
}
