package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Totals holds income and expense sums for a window.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// CategorySpending is the expense total of one category name.
type CategorySpending struct {
	Name  string
	Total decimal.Decimal
}

// Summary is the monthly dashboard view of a user's finances.
type Summary struct {
	UserName           string
	From               time.Time
	To                 time.Time
	Income             decimal.Decimal
	Expenses           decimal.Decimal
	Balance            decimal.Decimal
	BalanceChange      float64
	CategoriesSpending []CategorySpending
}
