// Package transaction records, lists, edits and deletes a user's income and
// expense entries. Every operation is scoped to the calling user; entries of
// other users behave as if they did not exist.
package transaction

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain/transaction"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository"
	categoryrepo "github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/category"
	transactionrepo "github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/transaction"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/service"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create validates cmd and stores it as a new transaction of userID. Fields
// are checked in the order amount, type, date, category.
func (s *Service) Create(
	ctx context.Context,
	userID int64,
	cmd dto.TransactionCommand,
) (id int64, err error) {
	log := s.logger.With("context", "CreateTransaction", "userID", userID)
	log.Debug("Create called")

	if cmd.Amount == nil || strings.TrimSpace(cmd.Type) == "" ||
		cmd.CategoryID == 0 || strings.TrimSpace(cmd.Date) == "" {
		return 0, domain.NewValidationError("amount, type, category_id and date are required")
	}
	amount, err := transaction.ParseAmount(*cmd.Amount)
	if err != nil {
		return 0, err
	}
	typ, err := domain.ParseEntryType(cmd.Type)
	if err != nil {
		return 0, err
	}
	date, err := transaction.ParseDate(cmd.Date)
	if err != nil {
		return 0, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		categories, err := repository.Get[categoryrepo.Repository](uow)
		if err != nil {
			return err
		}
		cat, err := categories.GetForUser(ctx, cmd.CategoryID, userID)
		if err != nil {
			return err
		}
		if cat == nil {
			return domain.NewNotFoundError("category")
		}

		txs, err := repository.Get[transactionrepo.Repository](uow)
		if err != nil {
			return err
		}
		id, err = txs.Create(ctx, dto.TransactionCreate{
			UserID:      userID,
			CategoryID:  cat.ID,
			Amount:      amount,
			Type:        typ,
			Description: cmd.Description,
			Date:        date,
			CreatedAt:   time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		return 0, service.Internal(log, err)
	}
	log.Info("Transaction created", "transactionID", id)
	return id, nil
}

// List returns the caller's transactions newest first. Unparseable dates are
// rejected; an unknown type or a non-numeric category filter is ignored.
func (s *Service) List(
	ctx context.Context,
	userID int64,
	q dto.TransactionQuery,
) (txs []*dto.TransactionRead, err error) {
	log := s.logger.With("context", "ListTransactions", "userID", userID)
	log.Debug("List called", "query", q)

	filter := dto.TransactionFilter{UserID: userID}
	if q.StartDate != "" {
		from, err := transaction.ParseDate(q.StartDate)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if q.EndDate != "" {
		to, err := transaction.ParseDate(q.EndDate)
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}
	if typ, err := domain.ParseEntryType(q.Type); err == nil {
		filter.Type = typ
	}
	if categoryID, err := strconv.ParseInt(strings.TrimSpace(q.CategoryID), 10, 64); err == nil && categoryID > 0 {
		filter.CategoryID = categoryID
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[transactionrepo.Repository](uow)
		if err != nil {
			return err
		}
		txs, err = repo.List(ctx, filter)
		return err
	})
	if err != nil {
		return nil, service.Internal(log, err)
	}
	log.Debug("List successful", "count", len(txs))
	return txs, nil
}

// Update applies the present fields of patch to the caller's transaction.
// Fields are checked in the order amount, type, category, description, date
// and the first invalid one fails the whole update.
func (s *Service) Update(
	ctx context.Context,
	userID, id int64,
	patch dto.TransactionPatch,
) error {
	log := s.logger.With("context", "UpdateTransaction", "userID", userID, "transactionID", id)
	log.Debug("Update called")

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txs, err := repository.Get[transactionrepo.Repository](uow)
		if err != nil {
			return err
		}
		existing, err := txs.GetForUser(ctx, id, userID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.NewNotFoundError("transaction")
		}

		var update dto.TransactionUpdate
		if patch.Amount != nil {
			amount, err := transaction.ParseAmount(*patch.Amount)
			if err != nil {
				return err
			}
			update.Amount = &amount
		}
		if patch.Type != nil {
			typ, err := domain.ParseEntryType(*patch.Type)
			if err != nil {
				return err
			}
			update.Type = &typ
		}
		if patch.CategoryID != nil {
			categories, err := repository.Get[categoryrepo.Repository](uow)
			if err != nil {
				return err
			}
			cat, err := categories.GetForUser(ctx, *patch.CategoryID, userID)
			if err != nil {
				return err
			}
			if cat == nil {
				return domain.NewNotFoundError("category")
			}
			update.CategoryID = &cat.ID
		}
		if patch.Description.Set {
			if patch.Description.Value == nil {
				update.ClearDescription = true
			} else {
				update.Description = patch.Description.Value
			}
		}
		if patch.Date != nil {
			date, err := transaction.ParseDate(*patch.Date)
			if err != nil {
				return err
			}
			update.Date = &date
		}

		if update.Empty() {
			return nil
		}
		return txs.Update(ctx, id, update)
	})
	if err != nil {
		return service.Internal(log, err)
	}
	log.Info("Transaction updated")
	return nil
}

// Delete removes the caller's transaction permanently.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	log := s.logger.With("context", "DeleteTransaction", "userID", userID, "transactionID", id)
	log.Debug("Delete called")

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txs, err := repository.Get[transactionrepo.Repository](uow)
		if err != nil {
			return err
		}
		deleted, err := txs.Delete(ctx, id, userID)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NewNotFoundError("transaction")
		}
		return nil
	})
	if err != nil {
		return service.Internal(log, err)
	}
	log.Info("Transaction deleted")
	return nil
}
