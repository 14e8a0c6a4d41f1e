package summary

import (
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/middleware"
	authsvc "github.com/briancito0432-afk/gestomoney-proyect/pkg/service/auth"
	summarysvc "github.com/briancito0432-afk/gestomoney-proyect/pkg/service/summary"
	"github.com/briancito0432-afk/gestomoney-proyect/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, summarySvc *summarysvc.Service, authSvc *authsvc.Service) {
	app.Get("/api/data/summary", middleware.JwtProtected(authSvc), common.WithCaller(Get(summarySvc)))
}

// Get returns the current month's dashboard.
// @Summary Monthly summary
// @Description Income, expenses, balance and expenses per category from the first of the current month through today
// @Tags summary
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/data/summary [get]
// @Security BearerAuth
func Get(summarySvc *summarysvc.Service) func(*fiber.Ctx, *dto.UserRead) error {
	return func(c *fiber.Ctx, caller *dto.UserRead) error {
		s, err := summarySvc.GetMonthlySummary(c.UserContext(), caller.ID)
		if err != nil {
			return common.ServiceError(c, err)
		}
		return c.JSON(toResponse(s))
	}
}
