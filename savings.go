package bankbook

// savingsRules holds the parameters specific to savings accounts.
type savingsRules struct {
	dailyLimit   int
	monthlyLimit int
	interestRate Rate
}

func defaultSavingsRules() savingsRules {
	return savingsRules{
		dailyLimit:   2,
		monthlyLimit: 5,
		interestRate: MustParseRate("0.33%"),
	}
}

// checkSavingsLimits enforces the daily then monthly transaction-frequency
// caps for a new transaction on the given date. Postings of every kind count
// toward the caps; interest postings themselves bypass this check entirely.
func (a *Account) checkSavingsLimits(date Date) error {
	if a.countOn(date) == a.savings.dailyLimit {
		return &TransactionLimitError{Scope: LimitDay, Limit: a.savings.dailyLimit}
	}
	if a.countInMonth(date) == a.savings.monthlyLimit {
		return &TransactionLimitError{Scope: LimitMonth, Limit: a.savings.monthlyLimit}
	}
	return nil
}

// postSavingsInterest posts the monthly interest. Frequency limits do not
// apply to interest postings.
func (a *Account) postSavingsInterest() error {
	posting, err := a.postingDate()
	if err != nil {
		return err
	}
	interest := a.Balance().MulRate(a.savings.interestRate).Round()
	a.append(posting, interest, Interest)
	return nil
}
