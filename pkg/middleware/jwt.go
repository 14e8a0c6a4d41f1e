// Package middleware contains the fiber middleware guarding protected routes.
package middleware

import (
	"errors"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/service/auth"
	"github.com/briancito0432-afk/gestomoney-proyect/webapi/common"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtProtected verifies the bearer token of the request and resolves the user
// it was issued for. The user is stored under common.CallerKey for
// common.WithCaller; every failure ends the request with 401.
//
// Keys come from authSvc.KeyFunc, the same check auth.Service.ParseToken
// uses. jwtware does not require an expiry; Authenticate rejects claims
// without one.
func JwtProtected(authSvc *auth.Service) fiber.Handler {
	return jwtware.New(jwtware.Config{
		KeyFunc:        authSvc.KeyFunc,
		Claims:         &auth.Claims{},
		ErrorHandler:   jwtError,
		SuccessHandler: authenticate(authSvc),
	})
}

func authenticate(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return jwtError(c, domain.ErrTokenInvalid)
		}
		claims, _ := token.Claims.(*auth.Claims)
		caller, err := authSvc.Authenticate(c.UserContext(), claims)
		if err != nil {
			return jwtError(c, err)
		}
		c.Locals(common.CallerKey, caller)
		return c.Next()
	}
}

func jwtError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, jwtware.ErrJWTMissingOrMalformed):
		err = domain.ErrTokenMissing
	case errors.Is(err, domain.ErrInternal):
		return common.ServiceError(c, err)
	default:
		err = auth.ClassifyTokenError(err)
	}
	return common.ProblemDetailsJSON(c, "Unauthorized", err)
}
