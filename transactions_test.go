package bankbook

import (
	"slices"
	"testing"
)

func TestTransaction_String(t *testing.T) {
	testCases := []struct {
		tx   Transaction
		want string
	}{
		{Transaction{Date: day("2024-01-05"), Amount: amt("100.00"), Kind: Common}, "2024-01-05, $100.00"},
		{Transaction{Date: day("2024-01-31"), Amount: amt("-5.75"), Kind: Fee}, "2024-01-31, $-5.75"},
		{Transaction{Date: day("2024-01-31"), Amount: amt("0.032"), Kind: Interest}, "2024-01-31, $0.03"},
		{Transaction{Date: day("2024-02-29"), Amount: amt("1234.5"), Kind: Common}, "2024-02-29, $1,234.50"},
	}
	for _, tc := range testCases {
		if got := tc.tx.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestTransaction_Compare(t *testing.T) {
	// Date is the primary key, sequence id breaks ties.
	txs := []Transaction{
		{Date: day("2024-02-01"), Seq: 0, Amount: amt("1"), Kind: Common},
		{Date: day("2024-01-05"), Seq: 2, Amount: amt("2"), Kind: Common},
		{Date: day("2024-01-05"), Seq: 1, Amount: amt("3"), Kind: Common},
		{Date: day("2024-01-04"), Seq: 3, Amount: amt("4"), Kind: Common},
	}
	slices.SortFunc(txs, Transaction.Compare)

	wantOrder := []int{3, 1, 2, 0}
	for i, tx := range txs {
		if tx.Seq != wantOrder[i] {
			t.Fatalf("position %d: got seq %d, want %d", i, tx.Seq, wantOrder[i])
		}
	}
}

func TestParseTransactionKind(t *testing.T) {
	for _, valid := range []string{"common", "interest", "fee"} {
		if _, err := ParseTransactionKind(valid); err != nil {
			t.Errorf("ParseTransactionKind(%q): %v", valid, err)
		}
	}
	if _, err := ParseTransactionKind("Dividend"); err == nil {
		t.Error("ParseTransactionKind(Dividend): want error")
	}
}
