// Package common holds the response, binding and error helpers shared by the
// HTTP handlers.
package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CallerKey is the fiber.Locals key holding the authenticated *dto.UserRead.
const CallerKey = "caller"

// Response is the success envelope for endpoints that only report a message.
type Response struct {
	Message string `json:"message"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

var validate = validator.New()

// ProblemDetailsJSON writes an application/problem+json response.
// The optional args may carry a detail string, a status code, or validation
// errors, in any order. Without an explicit status it is derived from err.
// Details of 5xx errors are never sent to the client.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, args ...any) error {
	status := ErrorToStatusCode(err)
	var detail string
	var fields any
	for _, arg := range args {
		switch v := arg.(type) {
		case int:
			status = v
		case string:
			detail = v
		case map[string]string:
			fields = v
		}
	}
	if detail == "" && err != nil && status < fiber.StatusInternalServerError {
		detail = err.Error()
	}
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
		Errors:   fields,
	}
	return c.Status(status).JSON(pd, "application/problem+json")
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorTitle returns the problem title for err.
func ErrorTitle(err error) string {
	switch ErrorToStatusCode(err) {
	case fiber.StatusBadRequest:
		return "Invalid request"
	case fiber.StatusUnauthorized:
		return "Unauthorized"
	case fiber.StatusNotFound:
		return "Not found"
	case fiber.StatusConflict:
		return "Conflict"
	default:
		return "Internal Server Error"
	}
}

// ServiceError writes the problem document for an error returned by a service.
func ServiceError(c *fiber.Ctx, err error) error {
	return ProblemDetailsJSON(c, ErrorTitle(err), err)
}

// BindAndValidate parses the JSON body into T and runs its validate tags.
// On failure the 400 response has already been written and the returned
// pointer is nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", nil,
			"malformed request body", fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			return nil, ProblemDetailsJSON(c, "Invalid request body", nil,
				"missing or invalid fields", fields, fiber.StatusBadRequest)
		}
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	return &input, nil
}

// FlexibleID is an identifier that accepts a JSON number or a numeric string.
type FlexibleID int64

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*id = 0
		return nil
	}
	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", data)
	}
	*id = FlexibleID(v)
	return nil
}

func (id FlexibleID) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(id))
}

// Int64 returns the id as int64; nil receivers yield nil.
func (id *FlexibleID) Int64() *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}

// Caller returns the user the JWT gate resolved for this request.
func Caller(c *fiber.Ctx) (*dto.UserRead, bool) {
	u, ok := c.Locals(CallerKey).(*dto.UserRead)
	return u, ok && u != nil
}

// WithCaller adapts a handler that needs the authenticated user. Requests
// that did not pass the JWT gate are rejected with 401.
func WithCaller(h func(c *fiber.Ctx, caller *dto.UserRead) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, ok := Caller(c)
		if !ok {
			return ProblemDetailsJSON(c, "Unauthorized", domain.ErrTokenMissing)
		}
		return h(c, caller)
	}
}

// PathID parses the :id route parameter. Non-numeric ids are reported as not
// found so they behave like ids the caller does not own.
func PathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewNotFoundError("transaction")
	}
	return id, nil
}
