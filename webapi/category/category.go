package category

import (
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/middleware"
	authsvc "github.com/briancito0432-afk/gestomoney-proyect/pkg/service/auth"
	categorysvc "github.com/briancito0432-afk/gestomoney-proyect/pkg/service/category"
	"github.com/briancito0432-afk/gestomoney-proyect/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, categorySvc *categorysvc.Service, authSvc *authsvc.Service) {
	app.Get("/api/categories", middleware.JwtProtected(authSvc), common.WithCaller(List(categorySvc)))
}

// List returns the caller's categories.
// @Summary List categories
// @Description List the categories of the authenticated user, ordered by id
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryRead
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/categories [get]
// @Security BearerAuth
func List(categorySvc *categorysvc.Service) func(*fiber.Ctx, *dto.UserRead) error {
	return func(c *fiber.Ctx, caller *dto.UserRead) error {
		cats, err := categorySvc.List(c.UserContext(), caller.ID)
		if err != nil {
			return common.ServiceError(c, err)
		}
		if cats == nil {
			cats = []*dto.CategoryRead{}
		}
		return c.JSON(cats)
	}
}
