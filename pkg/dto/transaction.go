package dto

import (
	"time"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/shopspring/decimal"
)

// TransactionRead is a read-optimized DTO for transaction queries, denormalized
// with the category's current name.
type TransactionRead struct {
	ID           int64
	UserID       int64
	CategoryID   int64
	CategoryName string
	Amount       decimal.Decimal
	Type         domain.EntryType
	Description  *string
	Date         time.Time
	CreatedAt    time.Time
}

// TransactionCreate is a DTO for persisting an already validated transaction.
type TransactionCreate struct {
	UserID      int64
	CategoryID  int64
	Amount      decimal.Decimal
	Type        domain.EntryType
	Description *string
	Date        time.Time
	CreatedAt   time.Time
}

// TransactionUpdate carries the validated fields of a partial update. Nil
// fields are left untouched; ClearDescription sets the description to NULL.
type TransactionUpdate struct {
	CategoryID       *int64
	Amount           *decimal.Decimal
	Type             *domain.EntryType
	Description      *string
	ClearDescription bool
	Date             *time.Time
}

// Empty reports whether the update changes nothing.
func (u TransactionUpdate) Empty() bool {
	return u.CategoryID == nil && u.Amount == nil && u.Type == nil &&
		u.Description == nil && !u.ClearDescription && u.Date == nil
}

// TransactionFilter narrows a transaction listing. Zero values mean "no filter".
type TransactionFilter struct {
	UserID     int64
	From       *time.Time
	To         *time.Time
	Type       domain.EntryType
	CategoryID int64
}

// TransactionCommand is raw caller input for creating a transaction; the
// transaction service validates it.
type TransactionCommand struct {
	Amount      *decimal.Decimal
	Type        string
	CategoryID  int64
	Date        string
	Description *string
}

// TransactionPatch is raw caller input for a partial update. Only non-nil
// fields (and a set Description) are applied.
type TransactionPatch struct {
	Amount      *decimal.Decimal
	Type        *string
	CategoryID  *int64
	Description Optional[string]
	Date        *string
}

// TransactionQuery is raw caller input for listing transactions.
type TransactionQuery struct {
	StartDate  string
	EndDate    string
	Type       string
	CategoryID string
}
