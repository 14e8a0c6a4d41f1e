package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.NewValidationError("bad"), fiber.StatusBadRequest},
		{domain.ErrTokenExpired, fiber.StatusUnauthorized},
		{domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{domain.NewNotFoundError("transaction"), fiber.StatusNotFound},
		{fmt.Errorf("%w: email", domain.ErrAlreadyExists), fiber.StatusConflict},
		{domain.ErrInternal, fiber.StatusInternalServerError},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorToStatusCode(tt.err))
		})
	}
}

func TestFlexibleID(t *testing.T) {
	tests := []struct {
		in      string
		want    FlexibleID
		wantErr bool
	}{
		{`12`, 12, false},
		{`"12"`, 12, false},
		{`" 7 "`, 7, false},
		{`null`, 0, false},
		{`"abc"`, 0, true},
		{`1.5`, 0, true},
		{`true`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var v struct {
				ID FlexibleID `json:"id"`
			}
			err := json.Unmarshal([]byte(`{"id":`+tt.in+`}`), &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.ID)
		})
	}

	var missing struct {
		ID *FlexibleID `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &missing))
	assert.Nil(t, missing.ID.Int64())
}

func problem(t *testing.T, app *fiber.App, path string) (*http.Response, ProblemDetails) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	return resp, pd
}

func TestServiceError(t *testing.T) {
	app := fiber.New()
	app.Get("/internal", func(c *fiber.Ctx) error {
		return ServiceError(c, fmt.Errorf("%w", errors.New("pq: password authentication failed")))
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return ServiceError(c, domain.NewNotFoundError("transaction"))
	})

	resp, pd := problem(t, app, "/internal")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
	assert.Empty(t, pd.Detail, "internal causes are never sent")
	assert.Equal(t, "Internal Server Error", pd.Title)

	resp, pd = problem(t, app, "/missing?x=1")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found: transaction", pd.Detail)
	assert.Equal(t, "/missing?x=1", pd.Instance)
}

func TestPathID(t *testing.T) {
	app := fiber.New()
	app.Get("/tx/:id", func(c *fiber.Ctx) error {
		id, err := PathID(c)
		if err != nil {
			return ServiceError(c, err)
		}
		return c.JSON(fiber.Map{"id": id})
	})

	for _, path := range []string{"/tx/abc", "/tx/0", "/tx/-4"} {
		resp, _ := problem(t, app, path)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/tx/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
