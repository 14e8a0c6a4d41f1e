package category

import (
	"context"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
)

// Repository defines the interface for category data access operations.
type Repository interface {
	// CreateBatch inserts all categories in one statement.
	CreateBatch(ctx context.Context, creates []dto.CategoryCreate) error

	// ListByUser lists the categories owned by userID, ordered by ID.
	ListByUser(ctx context.Context, userID int64) ([]*dto.CategoryRead, error)

	// GetForUser returns the category only if userID owns it, otherwise nil, nil.
	GetForUser(ctx context.Context, id, userID int64) (*dto.CategoryRead, error)
}
