package auth

import (
	authsvc "github.com/briancito0432-afk/gestomoney-proyect/pkg/service/auth"
	"github.com/briancito0432-afk/gestomoney-proyect/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/api/register", Register(authSvc))
	app.Post("/api/login", Login(authSvc))
}

// Register creates an account and its default categories.
// @Summary Register a new user
// @Description Create a user account. Six default categories are created with it.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterInput true "Registration data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/register [post]
func Register(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err // error response already written
		}
		if _, err := authSvc.Register(c.UserContext(), input.FullName, input.Email, input.Password); err != nil {
			return common.ServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(common.Response{Message: "Usuario registrado con éxito"})
	}
}

// Login authenticates a user and returns a session token.
// @Summary User login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err // error response already written
		}
		session, err := authSvc.Login(c.UserContext(), input.Email, input.Password)
		if err != nil {
			return common.ServiceError(c, err)
		}
		return c.JSON(LoginResponse{
			Message:  "Login exitoso",
			Token:    session.Token,
			UserName: session.UserName,
		})
	}
}
