package transaction

import (
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/middleware"
	authsvc "github.com/briancito0432-afk/gestomoney-proyect/pkg/service/auth"
	transactionsvc "github.com/briancito0432-afk/gestomoney-proyect/pkg/service/transaction"
	"github.com/briancito0432-afk/gestomoney-proyect/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, txSvc *transactionsvc.Service, authSvc *authsvc.Service) {
	protected := middleware.JwtProtected(authSvc)
	app.Post("/api/transactions", protected, common.WithCaller(Create(txSvc)))
	app.Get("/api/transactions", protected, common.WithCaller(List(txSvc)))
	app.Put("/api/transactions/:id", protected, common.WithCaller(Update(txSvc)))
	app.Delete("/api/transactions/:id", protected, common.WithCaller(Delete(txSvc)))
}

// Create records a transaction for the caller.
// @Summary Create a transaction
// @Description Record an income or expense against one of the caller's categories
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateInput true "Transaction"
// @Success 201 {object} CreateResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/transactions [post]
// @Security BearerAuth
func Create(txSvc *transactionsvc.Service) func(*fiber.Ctx, *dto.UserRead) error {
	return func(c *fiber.Ctx, caller *dto.UserRead) error {
		input, err := common.BindAndValidate[CreateInput](c)
		if input == nil {
			return err // error response already written
		}
		id, err := txSvc.Create(c.UserContext(), caller.ID, input.command())
		if err != nil {
			return common.ServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(CreateResponse{
			Message: "Transacción registrada con éxito",
			ID:      id,
		})
	}
}

// List returns the caller's transactions, newest first.
// @Summary List transactions
// @Description List the caller's transactions. Dates are inclusive and formatted YYYY-MM-DD.
// @Tags transactions
// @Produce json
// @Param start_date query string false "Earliest date"
// @Param end_date query string false "Latest date"
// @Param type query string false "INCOME or EXPENSE"
// @Param category_id query integer false "Category id"
// @Success 200 {object} ListResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/transactions [get]
// @Security BearerAuth
func List(txSvc *transactionsvc.Service) func(*fiber.Ctx, *dto.UserRead) error {
	return func(c *fiber.Ctx, caller *dto.UserRead) error {
		txs, err := txSvc.List(c.UserContext(), caller.ID, dto.TransactionQuery{
			StartDate:  c.Query("start_date"),
			EndDate:    c.Query("end_date"),
			Type:       c.Query("type"),
			CategoryID: c.Query("category_id"),
		})
		if err != nil {
			return common.ServiceError(c, err)
		}
		return c.JSON(toListResponse(txs))
	}
}

// Update changes the fields present in the body.
// @Summary Update a transaction
// @Description Partially update one of the caller's transactions
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path integer true "Transaction id"
// @Param request body UpdateInput true "Fields to change"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/transactions/{id} [put]
// @Security BearerAuth
func Update(txSvc *transactionsvc.Service) func(*fiber.Ctx, *dto.UserRead) error {
	return func(c *fiber.Ctx, caller *dto.UserRead) error {
		id, err := common.PathID(c)
		if err != nil {
			return common.ServiceError(c, err)
		}
		input, err := common.BindAndValidate[UpdateInput](c)
		if input == nil {
			return err // error response already written
		}
		if err := txSvc.Update(c.UserContext(), caller.ID, id, input.patch()); err != nil {
			return common.ServiceError(c, err)
		}
		return c.JSON(common.Response{Message: "Transacción actualizada con éxito"})
	}
}

// Delete removes one of the caller's transactions.
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path integer true "Transaction id"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/transactions/{id} [delete]
// @Security BearerAuth
func Delete(txSvc *transactionsvc.Service) func(*fiber.Ctx, *dto.UserRead) error {
	return func(c *fiber.Ctx, caller *dto.UserRead) error {
		id, err := common.PathID(c)
		if err != nil {
			return common.ServiceError(c, err)
		}
		if err := txSvc.Delete(c.UserContext(), caller.ID, id); err != nil {
			return common.ServiceError(c, err)
		}
		return c.JSON(common.Response{Message: "Transacción eliminada con éxito"})
	}
}
