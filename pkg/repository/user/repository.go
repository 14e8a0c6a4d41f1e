package user

import (
	"context"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user record and returns its identifier.
	// A duplicate email yields domain.ErrAlreadyExists.
	Create(ctx context.Context, create *dto.UserCreate) (int64, error)

	// Get retrieves a user by its ID. It returns nil, nil when absent.
	Get(ctx context.Context, id int64) (*dto.UserRead, error)

	// GetByEmail retrieves a user by exact email. It returns nil, nil when absent.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
