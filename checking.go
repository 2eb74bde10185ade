package bankbook

// checkingRules holds the parameters specific to checking accounts.
type checkingRules struct {
	interestRate        Rate
	lowBalanceThreshold Money
	lowBalanceFee       Money
}

func defaultCheckingRules() checkingRules {
	return checkingRules{
		interestRate:        MustParseRate("0.08%"),
		lowBalanceThreshold: MustParseMoney("100.00"),
		lowBalanceFee:       MustParseMoney("-5.75"),
	}
}

// postCheckingInterestAndFees posts the monthly interest and, when the
// post-interest balance is at or below the low-balance threshold, the
// low-balance fee. Both postings share the period's month-end date and count
// as one period for the double-posting guard.
func (a *Account) postCheckingInterestAndFees() error {
	posting, err := a.postingDate()
	if err != nil {
		return err
	}

	interest := a.Balance().MulRate(a.checking.interestRate).Round()
	a.append(posting, interest, Interest)

	// The fee decision uses the balance after interest was credited.
	if a.Balance().LessThanOrEqual(a.checking.lowBalanceThreshold) {
		a.append(posting, a.checking.lowBalanceFee, Fee)
	}
	return nil
}
