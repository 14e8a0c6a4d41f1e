// Package category lists the categories a user can file transactions under.
package category

import (
	"context"
	"log/slog"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository"
	categoryrepo "github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/category"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/service"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// List returns the caller's categories ordered by id.
func (s *Service) List(ctx context.Context, userID int64) (cats []*dto.CategoryRead, err error) {
	log := s.logger.With("context", "ListCategories", "userID", userID)
	log.Debug("List called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[categoryrepo.Repository](uow)
		if err != nil {
			return err
		}
		cats, err = repo.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, service.Internal(log, err)
	}
	log.Debug("List successful", "count", len(cats))
	return cats, nil
}
