// Package store persists banks in a SQLite database.
//
// The JSONL codec of the root package is the interchange format; the store is
// the resident format, one row per account and per transaction, so external
// tools can query the books with plain SQL.
package store

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bankbook"
)

// Store wraps the database handle.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database at path and migrates the
// schema. Use ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}
	if err := db.AutoMigrate(&accountRow{}, &transactionRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveBank replaces the stored content with the given bank, atomically. The
// selection is session state and is not stored.
func (s *Store) SaveBank(b *bankbook.Bank) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&transactionRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&accountRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear accounts: %w", err)
		}
		for a := range b.Accounts() {
			row := accountRow{
				Number:       a.Number(),
				Kind:         string(a.Kind()),
				InterestRate: a.InterestRate().Decimal().String(),
			}
			switch a.Kind() {
			case bankbook.Savings:
				row.DailyLimit = a.DailyLimit()
				row.MonthlyLimit = a.MonthlyLimit()
			case bankbook.Checking:
				row.LowBalanceThreshold = a.LowBalanceThreshold().Decimal().String()
				row.LowBalanceFee = a.LowBalanceFee().Decimal().String()
			}
			for t := range a.Transactions() {
				row.Transactions = append(row.Transactions, transactionRow{
					AccountNumber: a.Number(),
					Seq:           t.Seq,
					Date:          t.Date.String(),
					Amount:        t.Amount.Decimal().String(),
					Kind:          string(t.Kind),
				})
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to store account %s: %w", a.Number(), err)
			}
		}
		return nil
	})
}

// LoadBank restores the bank from the database. A fresh database yields an
// empty bank. No account is selected.
func (s *Store) LoadBank() (*bankbook.Bank, error) {
	var rows []accountRow
	if err := s.db.Preload("Transactions").Order("number").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	bank := bankbook.NewBank()
	for _, row := range rows {
		a, err := restoreAccount(row)
		if err != nil {
			return nil, err
		}
		if err := bank.Restore(a); err != nil {
			return nil, err
		}
	}
	return bank, nil
}

func restoreAccount(row accountRow) (*bankbook.Account, error) {
	kind, err := bankbook.ParseAccountKind(row.Kind)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", row.Number, err)
	}
	rate, err := bankbook.ParseRate(row.InterestRate)
	if err != nil {
		return nil, fmt.Errorf("account %s: invalid interest rate: %w", row.Number, err)
	}
	opts := []bankbook.Option{bankbook.WithInterestRate(rate)}
	switch kind {
	case bankbook.Savings:
		opts = append(opts,
			bankbook.WithDailyLimit(row.DailyLimit),
			bankbook.WithMonthlyLimit(row.MonthlyLimit))
	case bankbook.Checking:
		threshold, err := bankbook.ParseMoney(row.LowBalanceThreshold)
		if err != nil {
			return nil, fmt.Errorf("account %s: invalid threshold: %w", row.Number, err)
		}
		fee, err := bankbook.ParseMoney(row.LowBalanceFee)
		if err != nil {
			return nil, fmt.Errorf("account %s: invalid fee: %w", row.Number, err)
		}
		opts = append(opts,
			bankbook.WithLowBalanceThreshold(threshold),
			bankbook.WithLowBalanceFee(fee))
	}

	txs := make([]bankbook.Transaction, 0, len(row.Transactions))
	for _, t := range row.Transactions {
		date, err := bankbook.ParseDate(t.Date)
		if err != nil {
			return nil, fmt.Errorf("account %s seq %d: %w", row.Number, t.Seq, err)
		}
		amount, err := bankbook.ParseMoney(t.Amount)
		if err != nil {
			return nil, fmt.Errorf("account %s seq %d: %w", row.Number, t.Seq, err)
		}
		kind, err := bankbook.ParseTransactionKind(t.Kind)
		if err != nil {
			return nil, fmt.Errorf("account %s seq %d: %w", row.Number, t.Seq, err)
		}
		txs = append(txs, bankbook.Transaction{Date: date, Seq: t.Seq, Amount: amount, Kind: kind})
	}
	return bankbook.RestoreAccount(kind, row.Number, txs, opts...)
}
