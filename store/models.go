package store

// accountRow is the relational shape of an account. Rate and money columns
// are stored as decimal text so values survive the round trip exactly.
type accountRow struct {
	Number              string `gorm:"type:varchar(9);primaryKey"`
	Kind                string `gorm:"type:varchar(16);not null"`
	InterestRate        string `gorm:"type:varchar(32);not null"`
	DailyLimit          int    `gorm:"not null;default:0"`
	MonthlyLimit        int    `gorm:"not null;default:0"`
	LowBalanceThreshold string `gorm:"type:varchar(32);not null;default:''"`
	LowBalanceFee       string `gorm:"type:varchar(32);not null;default:''"`

	Transactions []transactionRow `gorm:"foreignKey:AccountNumber;references:Number"`
}

func (accountRow) TableName() string { return "accounts" }

// transactionRow is the relational shape of a transaction. The sequence id is
// unique per account, so the pair forms the primary key.
type transactionRow struct {
	AccountNumber string `gorm:"type:varchar(9);primaryKey"`
	Seq           int    `gorm:"primaryKey;autoIncrement:false"`
	Date          string `gorm:"type:varchar(10);not null;index"`
	Amount        string `gorm:"type:varchar(32);not null"`
	Kind          string `gorm:"type:varchar(16);not null"`
}

func (transactionRow) TableName() string { return "transactions" }
