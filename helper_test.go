package bankbook

// amt is a helper for tests to create exact money from a literal string.
func amt(s string) Money { return MustParseMoney(s) }

// day is a helper for tests to create a date from its YYYY-MM-DD form.
func day(s string) Date { return MustParseDate(s) }
