package bankbook

// SummaryReport is an at-a-glance overview of every account in the bank.
type SummaryReport struct {
	Entries []SummaryEntry
}

// SummaryEntry represents a single account row in the summary report.
type SummaryEntry struct {
	Number   string
	Kind     AccountKind
	Balance  Money
	Selected bool
}

// NewSummaryReport builds the summary of all accounts, in account-number order.
func NewSummaryReport(b *Bank) *SummaryReport {
	report := &SummaryReport{}
	for a := range b.Accounts() {
		report.Entries = append(report.Entries, SummaryEntry{
			Number:   a.Number(),
			Kind:     a.Kind(),
			Balance:  a.Balance(),
			Selected: a == b.Selected(),
		})
	}
	return report
}

// HistoryReport represents the transaction history of a single account.
type HistoryReport struct {
	Number  string
	Kind    AccountKind
	Entries []HistoryEntry
}

// HistoryEntry is a single transaction with the balance it left behind.
type HistoryEntry struct {
	Date    Date
	Seq     int
	Amount  Money
	Kind    TransactionKind
	Balance Money // running balance after this transaction
}

// NewHistoryReport computes the history of one account in the (date, sequence
// id) total order, with a running balance per entry.
func NewHistoryReport(a *Account) *HistoryReport {
	report := &HistoryReport{
		Number: a.Number(),
		Kind:   a.Kind(),
	}
	var running Money
	for tx := range a.Transactions() {
		running = running.Add(tx.Amount)
		report.Entries = append(report.Entries, HistoryEntry{
			Date:    tx.Date,
			Seq:     tx.Seq,
			Amount:  tx.Amount,
			Kind:    tx.Kind,
			Balance: running,
		})
	}
	return report
}
