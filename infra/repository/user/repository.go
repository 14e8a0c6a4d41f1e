package user

import (
	"context"
	"errors"

	"github.com/briancito0432-afk/gestomoney-proyect/infra/repository"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/user"
	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

// New returns a user.Repository backed by db.
func New(db *gorm.DB) user.Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) (int64, error) {
	u := &User{
		FullName:     create.FullName,
		Email:        create.Email,
		PasswordHash: create.PasswordHash,
		CreatedAt:    create.CreatedAt,
	}
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(u).Error
	}); err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (r *gormRepository) Get(
	ctx context.Context,
	id int64,
) (*dto.UserRead, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*dto.UserRead, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *gormRepository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(
		ctx,
	).Model(&User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormRepository) first(
	ctx context.Context,
	query string,
	arg any,
) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		HashedPassword: u.PasswordHash,
		CreatedAt:      u.CreatedAt,
	}
}

var _ user.Repository = (*gormRepository)(nil)
