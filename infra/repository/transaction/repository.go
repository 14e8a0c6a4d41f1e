package transaction

import (
	"context"
	"time"

	"github.com/briancito0432-afk/gestomoney-proyect/infra/repository"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain/category"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	repo "github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/transaction"
	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

// New returns a transaction.Repository backed by db.
func New(db *gorm.DB) repo.Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(
	ctx context.Context,
	create dto.TransactionCreate,
) (int64, error) {
	tx := mapCreateDTOToModel(create)
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&tx).Error
	}); err != nil {
		return 0, err
	}
	return tx.ID, nil
}

func (r *gormRepository) GetForUser(
	ctx context.Context,
	id, userID int64,
) (*dto.TransactionRead, error) {
	var rows []row
	if err := r.joined(ctx).
		Where("t.id = ? AND t.user_id = ?", id, userID).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return mapRowToReadDTO(&rows[0]), nil
}

func (r *gormRepository) List(
	ctx context.Context,
	filter dto.TransactionFilter,
) ([]*dto.TransactionRead, error) {
	q := r.joined(ctx).Where("t.user_id = ?", filter.UserID)
	if filter.From != nil {
		q = q.Where("t.transaction_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("t.transaction_date <= ?", *filter.To)
	}
	if filter.Type != "" {
		q = q.Where("t.type = ?", filter.Type.String())
	}
	if filter.CategoryID != 0 {
		q = q.Where("t.category_id = ?", filter.CategoryID)
	}

	var rows []row
	if err := q.Order("t.transaction_date DESC, t.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapRowToReadDTO(&rows[i]))
	}
	return result, nil
}

func (r *gormRepository) Update(
	ctx context.Context,
	id int64,
	update dto.TransactionUpdate,
) error {
	updates := mapUpdateDTOToModel(update)
	if len(updates) == 0 {
		return nil
	}
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).
			Model(&Transaction{}).
			Where("id = ?", id).
			Updates(updates).Error
	})
}

func (r *gormRepository) Delete(
	ctx context.Context,
	id, userID int64,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Transaction{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *gormRepository) Totals(
	ctx context.Context,
	userID int64,
	from, to time.Time,
) (dto.Totals, error) {
	var totals dto.Totals
	err := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount END), 0) AS expenses",
			domain.Income.String(), domain.Expense.String(),
		).
		Where("user_id = ? AND transaction_date BETWEEN ? AND ?", userID, from, to).
		Scan(&totals).Error
	return totals, err
}

func (r *gormRepository) ExpensesByCategory(
	ctx context.Context,
	userID int64,
	from, to time.Time,
) ([]dto.CategorySpending, error) {
	var spending []dto.CategorySpending
	err := r.db.WithContext(ctx).
		Table("transactions AS t").
		Select("c.name AS name, SUM(t.amount) AS total").
		Joins("JOIN categories c ON c.id = t.category_id").
		Where("t.user_id = ? AND t.type = ? AND t.transaction_date BETWEEN ? AND ?",
			userID, domain.Expense.String(), from, to).
		Group("c.name").
		Order("total DESC").
		Scan(&spending).Error
	if err != nil {
		return nil, err
	}
	return spending, nil
}

// joined selects transactions with their category name, falling back to the
// placeholder when the category row is missing.
func (r *gormRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transactions AS t").
		Select("t.*, COALESCE(c.name, ?) AS category_name", category.UnknownName).
		Joins("LEFT JOIN categories c ON c.id = t.category_id")
}

// --- Mappers ---

func mapCreateDTOToModel(create dto.TransactionCreate) Transaction {
	return Transaction{
		UserID:      create.UserID,
		CategoryID:  create.CategoryID,
		Amount:      create.Amount,
		Type:        create.Type.String(),
		Description: create.Description,
		Date:        create.Date,
		CreatedAt:   create.CreatedAt,
	}
}

func mapUpdateDTOToModel(update dto.TransactionUpdate) map[string]any {
	updates := make(map[string]any)
	if update.Amount != nil {
		updates["amount"] = *update.Amount
	}
	if update.Type != nil {
		updates["type"] = update.Type.String()
	}
	if update.CategoryID != nil {
		updates["category_id"] = *update.CategoryID
	}
	if update.ClearDescription {
		updates["description"] = nil
	} else if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Date != nil {
		updates["transaction_date"] = *update.Date
	}
	return updates
}

func mapRowToReadDTO(r *row) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:           r.ID,
		UserID:       r.UserID,
		CategoryID:   r.CategoryID,
		CategoryName: r.CategoryName,
		Amount:       r.Amount,
		Type:         domain.EntryType(r.Type),
		Description:  r.Description,
		Date:         r.Date,
		CreatedAt:    r.CreatedAt,
	}
}

var _ repo.Repository = (*gormRepository)(nil)
