// Package webapi assembles the HTTP API. Routes live in sub-packages:
// - auth: registration and login
// - category: the caller's categories
// - transaction: income and expense entries
// - summary: the monthly dashboard
package webapi

import (
	"errors"
	"strings"

	_ "github.com/briancito0432-afk/gestomoney-proyect/docs"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/app"
	authweb "github.com/briancito0432-afk/gestomoney-proyect/webapi/auth"
	categoryweb "github.com/briancito0432-afk/gestomoney-proyect/webapi/category"
	"github.com/briancito0432-afk/gestomoney-proyect/webapi/common"
	summaryweb "github.com/briancito0432-afk/gestomoney-proyect/webapi/summary"
	transactionweb "github.com/briancito0432-afk/gestomoney-proyect/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	cfg := app.Config

	fiberApp := fiber.New(fiber.Config{
		AppName: "Gestomoney API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return common.ProblemDetailsJSON(c, fe.Message, nil, fe.Code)
			}
			app.Deps.Logger.Error("Unhandled error", "path", c.Path(), "error", err)
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path}\n",
	}))
	fiberApp.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Cors.AllowOrigins,
		AllowMethods: strings.Join([]string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions,
		}, ","),
		AllowHeaders: "Content-Type,Authorization",
	}))

	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Gestomoney API is running!")
	})

	authweb.Routes(fiberApp, app.AuthService)
	categoryweb.Routes(fiberApp, app.CategoryService, app.AuthService)
	transactionweb.Routes(fiberApp, app.TransactionService, app.AuthService)
	summaryweb.Routes(fiberApp, app.SummaryService, app.AuthService)
	return fiberApp
}
