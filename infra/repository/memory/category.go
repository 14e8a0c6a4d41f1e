package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
)

type categoryRepository struct {
	data *state
}

func (r *categoryRepository) CreateBatch(ctx context.Context, creates []dto.CategoryCreate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, c := range creates {
		r.data.lastCategoryID++
		r.data.categories[r.data.lastCategoryID] = dto.CategoryRead{
			ID:        r.data.lastCategoryID,
			UserID:    c.UserID,
			Name:      c.Name,
			Type:      c.Type,
			IsDefault: c.IsDefault,
		}
	}
	return nil
}

func (r *categoryRepository) ListByUser(ctx context.Context, userID int64) ([]*dto.CategoryRead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := make([]*dto.CategoryRead, 0)
	for _, c := range r.data.categories {
		if c.UserID == userID {
			result = append(result, &c)
		}
	}
	slices.SortFunc(result, func(a, b *dto.CategoryRead) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (r *categoryRepository) GetForUser(ctx context.Context, id, userID int64) (*dto.CategoryRead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, ok := r.data.categories[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	return &c, nil
}
