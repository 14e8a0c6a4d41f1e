// Package summary builds the monthly dashboard: income, expenses, balance and
// where the money went.
package summary

import (
	"context"
	"log/slog"
	"time"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain/transaction"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository"
	transactionrepo "github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/transaction"
	userrepo "github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/user"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/service"
	"github.com/shopspring/decimal"
)

// BalanceChange is reported until month-over-month comparison exists.
const BalanceChange = 0.025

type Option func(*Service)

// WithClock replaces time.Now when deciding the current month.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

func New(uow repository.UnitOfWork, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{uow: uow, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Window returns the first day of the month containing now and the day of
// now itself, both inclusive.
func Window(now time.Time) (from, to time.Time) {
	to = transaction.DateOf(now)
	from = time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, to
}

// GetMonthlySummary aggregates the caller's transactions dated from the first
// of the current month through today.
func (s *Service) GetMonthlySummary(ctx context.Context, userID int64) (*dto.Summary, error) {
	log := s.logger.With("context", "GetMonthlySummary", "userID", userID)
	log.Debug("GetMonthlySummary called")

	from, to := Window(s.now())
	summary := &dto.Summary{
		From:          from,
		To:            to,
		Income:        decimal.Zero,
		Expenses:      decimal.Zero,
		BalanceChange: BalanceChange,
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err := users.Get(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.NewNotFoundError("user")
		}
		summary.UserName = u.FullName

		txs, err := repository.Get[transactionrepo.Repository](uow)
		if err != nil {
			return err
		}
		totals, err := txs.Totals(ctx, userID, from, to)
		if err != nil {
			return err
		}
		summary.Income = totals.Income
		summary.Expenses = totals.Expenses
		summary.CategoriesSpending, err = txs.ExpensesByCategory(ctx, userID, from, to)
		return err
	})
	if err != nil {
		return nil, service.Internal(log, err)
	}
	summary.Balance = summary.Income.Sub(summary.Expenses)
	if summary.CategoriesSpending == nil {
		summary.CategoriesSpending = []dto.CategorySpending{}
	}
	log.Debug("GetMonthlySummary successful", "from", from, "to", to)
	return summary, nil
}
