package category

import (
	"context"
	"errors"

	"github.com/briancito0432-afk/gestomoney-proyect/infra/repository"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/category"
	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

// New returns a category.Repository backed by db.
func New(db *gorm.DB) category.Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreateBatch(
	ctx context.Context,
	creates []dto.CategoryCreate,
) error {
	if len(creates) == 0 {
		return nil
	}
	models := make([]Category, 0, len(creates))
	for _, c := range creates {
		models = append(models, Category{
			UserID:    c.UserID,
			Name:      c.Name,
			Type:      c.Type.String(),
			IsDefault: c.IsDefault,
		})
	}
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&models).Error
	})
}

func (r *gormRepository) ListByUser(
	ctx context.Context,
	userID int64,
) ([]*dto.CategoryRead, error) {
	var models []Category
	if err := r.db.WithContext(
		ctx,
	).Where("user_id = ?", userID).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.CategoryRead, 0, len(models))
	for i := range models {
		result = append(result, mapModelToDTO(&models[i]))
	}
	return result, nil
}

func (r *gormRepository) GetForUser(
	ctx context.Context,
	id, userID int64,
) (*dto.CategoryRead, error) {
	var c Category
	if err := r.db.WithContext(
		ctx,
	).Where("id = ? AND user_id = ?", id, userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&c), nil
}

func mapModelToDTO(c *Category) *dto.CategoryRead {
	return &dto.CategoryRead{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Type:      domain.EntryType(c.Type),
		IsDefault: c.IsDefault,
	}
}

var _ category.Repository = (*gormRepository)(nil)
