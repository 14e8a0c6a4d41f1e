package memory

import (
	"context"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
)

type userRepository struct {
	data *state
}

func (r *userRepository) Create(ctx context.Context, create *dto.UserCreate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if r.findByEmail(create.Email) != nil {
		return 0, domain.ErrAlreadyExists
	}
	r.data.lastUserID++
	u := dto.UserRead{
		ID:             r.data.lastUserID,
		FullName:       create.FullName,
		Email:          create.Email,
		HashedPassword: create.PasswordHash,
		CreatedAt:      create.CreatedAt,
	}
	r.data.users[u.ID] = u
	return u.ID, nil
}

func (r *userRepository) Get(ctx context.Context, id int64) (*dto.UserRead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u, ok := r.data.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.findByEmail(email), nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.findByEmail(email) != nil, nil
}

func (r *userRepository) findByEmail(email string) *dto.UserRead {
	for _, u := range r.data.users {
		if u.Email == email {
			return &u
		}
	}
	return nil
}
