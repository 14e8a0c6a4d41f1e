package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain/category"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/shopspring/decimal"
)

type transactionRepository struct {
	data *state
}

func (r *transactionRepository) Create(ctx context.Context, create dto.TransactionCreate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if _, ok := r.data.users[create.UserID]; !ok {
		return 0, domain.NewNotFoundError("user")
	}
	r.data.lastTransactionID++
	r.data.transactions[r.data.lastTransactionID] = dto.TransactionRead{
		ID:          r.data.lastTransactionID,
		UserID:      create.UserID,
		CategoryID:  create.CategoryID,
		Amount:      create.Amount,
		Type:        create.Type,
		Description: create.Description,
		Date:        create.Date,
		CreatedAt:   create.CreatedAt,
	}
	return r.data.lastTransactionID, nil
}

func (r *transactionRepository) GetForUser(ctx context.Context, id, userID int64) (*dto.TransactionRead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, ok := r.data.transactions[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	return r.withCategoryName(t), nil
}

func (r *transactionRepository) List(ctx context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0)
	for _, t := range r.data.transactions {
		if !matches(t, filter) {
			continue
		}
		result = append(result, r.withCategoryName(t))
	}
	slices.SortFunc(result, func(a, b *dto.TransactionRead) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return result, nil
}

func (r *transactionRepository) Update(ctx context.Context, id int64, update dto.TransactionUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t, ok := r.data.transactions[id]
	if !ok {
		return domain.ErrNotFound
	}
	if update.Amount != nil {
		t.Amount = *update.Amount
	}
	if update.Type != nil {
		t.Type = *update.Type
	}
	if update.CategoryID != nil {
		t.CategoryID = *update.CategoryID
	}
	if update.ClearDescription {
		t.Description = nil
	} else if update.Description != nil {
		desc := *update.Description
		t.Description = &desc
	}
	if update.Date != nil {
		t.Date = *update.Date
	}
	r.data.transactions[id] = t
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	t, ok := r.data.transactions[id]
	if !ok || t.UserID != userID {
		return false, nil
	}
	delete(r.data.transactions, id)
	return true, nil
}

func (r *transactionRepository) Totals(ctx context.Context, userID int64, from, to time.Time) (dto.Totals, error) {
	totals := dto.Totals{Income: decimal.Zero, Expenses: decimal.Zero}
	if err := ctx.Err(); err != nil {
		return totals, err
	}
	for _, t := range r.data.transactions {
		if t.UserID != userID || !within(t.Date, from, to) {
			continue
		}
		switch t.Type {
		case domain.Income:
			totals.Income = totals.Income.Add(t.Amount)
		case domain.Expense:
			totals.Expenses = totals.Expenses.Add(t.Amount)
		}
	}
	return totals, nil
}

func (r *transactionRepository) ExpensesByCategory(ctx context.Context, userID int64, from, to time.Time) ([]dto.CategorySpending, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	totals := map[string]decimal.Decimal{}
	for _, t := range r.data.transactions {
		if t.UserID != userID || t.Type != domain.Expense || !within(t.Date, from, to) {
			continue
		}
		c, ok := r.data.categories[t.CategoryID]
		if !ok {
			continue
		}
		totals[c.Name] = totals[c.Name].Add(t.Amount)
	}

	result := make([]dto.CategorySpending, 0, len(totals))
	for name, total := range totals {
		result = append(result, dto.CategorySpending{Name: name, Total: total})
	}
	slices.SortFunc(result, func(a, b dto.CategorySpending) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return result, nil
}

func (r *transactionRepository) withCategoryName(t dto.TransactionRead) *dto.TransactionRead {
	t.CategoryName = category.UnknownName
	if c, ok := r.data.categories[t.CategoryID]; ok {
		t.CategoryName = c.Name
	}
	return &t
}

func matches(t dto.TransactionRead, f dto.TransactionFilter) bool {
	switch {
	case t.UserID != f.UserID:
		return false
	case f.From != nil && t.Date.Before(*f.From):
		return false
	case f.To != nil && t.Date.After(*f.To):
		return false
	case f.Type != "" && t.Type != f.Type:
		return false
	case f.CategoryID != 0 && t.CategoryID != f.CategoryID:
		return false
	}
	return true
}

func within(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}
