// Package testutils runs HTTP tests against the full API wired to the
// in-memory store.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/briancito0432-afk/gestomoney-proyect/infra/repository/memory"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/app"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/config"
	"github.com/briancito0432-afk/gestomoney-proyect/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the password of users created by CreateTestUser.
const TestPassword = "password123"

// TestUser is a registered user and the token it logged in with.
type TestUser struct {
	FullName string
	Email    string
	Token    string
}

// E2ETestSuite provides a fresh API over an empty in-memory store for every
// test.
type E2ETestSuite struct {
	suite.Suite
	App   *app.App
	Store *memory.Store
	app   *fiber.App
}

// TestConfig is the configuration the suite runs with.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "127.0.0.1", Port: 5002},
		Log:    &config.Log{Format: "text"},
		DB:     &config.DB{Driver: config.DriverMemory},
		Auth: &config.Auth{
			Jwt:        &config.Jwt{Secret: "e2e-test-secret", Expiry: 24 * time.Hour},
			BcryptCost: bcrypt.MinCost,
		},
		Cors: &config.Cors{AllowOrigins: "*"},
	}
}

func (s *E2ETestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Store = memory.New()
	s.App = app.New(&app.Deps{Uow: s.Store, Logger: logger}, TestConfig())
	s.app = webapi.SetupApp(s.App)
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.MakeRawRequest(req)
}

// MakeRawRequest sends req to the app as is.
func (s *E2ETestSuite) MakeRawRequest(req *http.Request) *http.Response {
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// Decode reads the JSON body of resp into v and closes it.
func (s *E2ETestSuite) Decode(resp *http.Response, v any) {
	defer resp.Body.Close() //nolint:errcheck
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
}

// LoginUser logs in through the API and returns the token.
func (s *E2ETestSuite) LoginUser(email, password string) string {
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	resp := s.MakeRequest(http.MethodPost, "/api/login", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	s.Decode(resp, &out)
	s.Require().NotEmpty(out.Token)
	return out.Token
}

// CreateTestUser registers a user with a random email and logs it in.
func (s *E2ETestSuite) CreateTestUser() *TestUser {
	u := &TestUser{
		FullName: "Test User",
		Email:    fmt.Sprintf("test_%s@example.com", uuid.NewString()[:8]),
	}
	body := fmt.Sprintf(`{"fullName":%q,"email":%q,"password":%q}`, u.FullName, u.Email, TestPassword)
	resp := s.MakeRequest(http.MethodPost, "/api/register", body, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()
	u.Token = s.LoginUser(u.Email, TestPassword)
	return u
}

// CategoryID returns the id of the caller's category with the given name.
func (s *E2ETestSuite) CategoryID(token, name string) int64 {
	resp := s.MakeRequest(http.MethodGet, "/api/categories", "", token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var cats []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	s.Decode(resp, &cats)
	for _, c := range cats {
		if c.Name == name {
			return c.ID
		}
	}
	s.FailNow("category not found", name)
	return 0
}

// CreateTransaction posts body and returns the new transaction id.
func (s *E2ETestSuite) CreateTransaction(token, body string) int64 {
	resp := s.MakeRequest(http.MethodPost, "/api/transactions", body, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var out struct {
		ID int64 `json:"id"`
	}
	s.Decode(resp, &out)
	return out.ID
}
