// Package app wires the services of the application around a unit of work.
package app

import (
	"log/slog"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/config"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/service/auth"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/service/category"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/service/summary"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/service/transaction"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

type App struct {
	Deps               *Deps
	Config             *config.App
	AuthService        *auth.Service
	CategoryService    *category.Service
	TransactionService *transaction.Service
	SummaryService     *summary.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:               deps,
		Config:             cfg,
		AuthService:        auth.New(deps.Uow, cfg.Auth, deps.Logger),
		CategoryService:    category.New(deps.Uow, deps.Logger),
		TransactionService: transaction.New(deps.Uow, deps.Logger),
		SummaryService:     summary.New(deps.Uow, deps.Logger),
	}
}
