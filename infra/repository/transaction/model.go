package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a persisted income or expense entry.
type Transaction struct {
	ID          int64           `gorm:"primaryKey"`
	UserID      int64           `gorm:"not null;index"`
	CategoryID  int64           `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Type        string          `gorm:"size:10;not null"`
	Description *string         `gorm:"type:text"`
	Date        time.Time       `gorm:"column:transaction_date;type:date;not null"`
	CreatedAt   time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

// row is a transaction joined with its category's name.
type row struct {
	Transaction
	CategoryName string
}
