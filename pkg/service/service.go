// Package service provides the business logic of the bookkeeping API.
// It is organized into sub-packages:
//   - auth: registration, login and token verification
//   - category: the caller's categories
//   - transaction: income and expense entries
//   - summary: the monthly dashboard
//
// Every operation runs inside one repository.UnitOfWork.
package service

import (
	"log/slog"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
)

// Internal passes domain errors through and replaces anything else with
// domain.ErrInternal after logging the cause.
func Internal(log *slog.Logger, err error) error {
	if err == nil || domain.IsKnown(err) {
		return err
	}
	log.Error("Unexpected failure", "error", err)
	return domain.ErrInternal
}
