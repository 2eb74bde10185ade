package bankbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Record types used to identify the lines of an encoded bank.
const (
	recordAccount     = "account"
	recordTransaction = "transaction"
)

// accountLine is a specialized struct for decoding an account record.
type accountLine struct {
	Number              string `json:"number"`
	Kind                string `json:"kind"`
	InterestRate        Rate   `json:"interestRate"`
	DailyLimit          int    `json:"dailyLimit"`
	MonthlyLimit        int    `json:"monthlyLimit"`
	LowBalanceThreshold Money  `json:"lowBalanceThreshold"`
	LowBalanceFee       Money  `json:"lowBalanceFee"`
}

// transactionLine is a specialized struct for decoding a transaction record.
type transactionLine struct {
	Account string `json:"account"`
	Date    Date   `json:"date"`
	Seq     int    `json:"seq"`
	Amount  Money  `json:"amount"`
	Kind    string `json:"kind"`
}

// EncodeBank persists a bank to an io.Writer in JSONL format: one line per
// account followed by one line per transaction in the (date, sequence id)
// total order. The selection is session state and is not encoded.
func EncodeBank(w io.Writer, b *Bank) error {
	decimal.MarshalJSONWithoutQuotes = true

	for a := range b.Accounts() {
		line := accountJSON(a)
		data, err := line.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal account %s: %w", a.Number(), err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write account %s: %w", a.Number(), err)
		}
	}
	for a := range b.Accounts() {
		for tx := range a.Transactions() {
			var obj jsonObjectWriter
			obj.Append("record", recordTransaction)
			obj.Append("account", a.Number())
			obj.EmbedFrom(tx)
			data, err := obj.MarshalJSON()
			if err != nil {
				return fmt.Errorf("failed to marshal transaction %s/%d: %w", a.Number(), tx.Seq, err)
			}
			if _, err := w.Write(append(data, '\n')); err != nil {
				return fmt.Errorf("failed to write transaction %s/%d: %w", a.Number(), tx.Seq, err)
			}
		}
	}
	return nil
}

// accountJSON builds the canonical account record with a stable key order.
func accountJSON(a *Account) *jsonObjectWriter {
	var obj jsonObjectWriter
	obj.Append("record", recordAccount)
	obj.Append("number", a.Number())
	obj.Append("kind", a.Kind())
	obj.Append("interestRate", a.InterestRate())
	switch a.Kind() {
	case Savings:
		obj.Append("dailyLimit", a.DailyLimit())
		obj.Append("monthlyLimit", a.MonthlyLimit())
	case Checking:
		obj.Append("lowBalanceThreshold", a.LowBalanceThreshold())
		obj.Append("lowBalanceFee", a.LowBalanceFee())
	}
	return &obj
}

// DecodeBank reads a stream of JSONL data from an io.Reader, decodes each
// line into the appropriate record struct, and returns a restored bank with
// no account selected.
func DecodeBank(r io.Reader) (*Bank, error) {
	scanner := bufio.NewScanner(r)

	accounts := make(map[string]accountLine)
	transactions := make(map[string][]Transaction)
	var order []string // account numbers in file order

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case recordAccount:
			var temp accountLine
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			if _, dup := accounts[temp.Number]; dup {
				return nil, fmt.Errorf("duplicate account record %q", temp.Number)
			}
			accounts[temp.Number] = temp
			order = append(order, temp.Number)
		case recordTransaction:
			var temp transactionLine
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			kind, err := ParseTransactionKind(temp.Kind)
			if err != nil {
				return nil, err
			}
			transactions[temp.Account] = append(transactions[temp.Account], Transaction{
				Date:   temp.Date,
				Seq:    temp.Seq,
				Amount: temp.Amount,
				Kind:   kind,
			})
		default:
			return nil, fmt.Errorf("unknown record type: %q", identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	bank := NewBank()
	for _, number := range order {
		line := accounts[number]
		kind, err := ParseAccountKind(line.Kind)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", number, err)
		}
		opts := []Option{WithInterestRate(line.InterestRate)}
		switch kind {
		case Savings:
			opts = append(opts, WithDailyLimit(line.DailyLimit), WithMonthlyLimit(line.MonthlyLimit))
		case Checking:
			opts = append(opts, WithLowBalanceThreshold(line.LowBalanceThreshold), WithLowBalanceFee(line.LowBalanceFee))
		}
		a, err := RestoreAccount(kind, number, transactions[number], opts...)
		if err != nil {
			return nil, err
		}
		if err := bank.Restore(a); err != nil {
			return nil, err
		}
		delete(transactions, number)
	}
	for number := range transactions {
		return nil, fmt.Errorf("transactions reference unknown account %q", number)
	}
	return bank, nil
}
