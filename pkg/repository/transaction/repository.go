package transaction

import (
	"context"
	"time"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
)

// Repository defines the interface for transaction data access operations.
type Repository interface {
	// Create inserts a new transaction and returns its identifier.
	Create(ctx context.Context, create dto.TransactionCreate) (int64, error)

	// GetForUser returns the transaction only if userID owns it, otherwise nil, nil.
	GetForUser(ctx context.Context, id, userID int64) (*dto.TransactionRead, error)

	// List returns the transactions matching filter, newest date first.
	List(ctx context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error)

	// Update applies the set fields of update to the transaction.
	Update(ctx context.Context, id int64, update dto.TransactionUpdate) error

	// Delete hard-deletes the transaction if userID owns it and reports
	// whether a row was removed.
	Delete(ctx context.Context, id, userID int64) (bool, error)

	// Totals sums INCOME and EXPENSE amounts dated within [from, to].
	Totals(ctx context.Context, userID int64, from, to time.Time) (dto.Totals, error)

	// ExpensesByCategory sums EXPENSE amounts dated within [from, to],
	// grouped by category name, largest first.
	ExpensesByCategory(ctx context.Context, userID int64, from, to time.Time) ([]dto.CategorySpending, error)
}
