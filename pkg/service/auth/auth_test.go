package auth_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/briancito0432-afk/gestomoney-proyect/infra/repository/memory"
	"github.com/briancito0432-afk/gestomoney-proyect/internal/fixtures"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/config"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/category"
	authsvc "github.com/briancito0432-afk/gestomoney-proyect/pkg/service/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const secret = "test-secret-for-signing"

func testConfig() *config.Auth {
	return &config.Auth{
		Jwt:        &config.Jwt{Secret: secret, Expiry: 24 * time.Hour},
		BcryptCost: bcrypt.MinCost,
	}
}

func newService(t *testing.T, opts ...authsvc.Option) (*authsvc.Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	return authsvc.New(store, testConfig(), slog.Default(), opts...), store
}

func TestRegister_SeedsDefaultCategories(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	id, err := svc.Register(ctx, "Ana Pérez", "ana@example.com", "s3cret")
	require.NoError(t, err)
	assert.Positive(t, id)

	err = store.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[category.Repository](uow)
		require.NoError(t, err)
		cats, err := repo.ListByUser(ctx, id)
		require.NoError(t, err)
		require.Len(t, cats, 6)

		names := make([]string, 0, len(cats))
		for _, c := range cats {
			assert.True(t, c.IsDefault)
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{
			"Salario", "Regalo", "Comida y Bebidas", "Vivienda", "Transporte", "Ocio y Viajes",
		}, names)
		assert.Equal(t, domain.Income, cats[0].Type)
		assert.Equal(t, domain.Expense, cats[5].Type)
		return nil
	})
	require.NoError(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "ana@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other Ana", "ana@example.com", "different")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name, fullName, email, password string
	}{
		{"missing name", "", "ana@example.com", "pw"},
		{"missing email", "Ana", "", "pw"},
		{"missing password", "Ana", "ana@example.com", ""},
		{"password over bcrypt limit", "Ana", "ana@example.com", string(make([]byte, 73))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.fullName, tt.email, tt.password)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRegister_StorageFailureIsInternal(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	uow.On("Do", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

	svc := authsvc.New(uow, testConfig(), slog.Default())
	_, err := svc.Register(context.Background(), "Ana", "ana@example.com", "s3cret")
	assert.ErrorIs(t, err, domain.ErrInternal)
}

func TestLogin(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	svc, _ := newService(t, authsvc.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	id, err := svc.Register(ctx, "Ana Pérez", "ana@example.com", "s3cret")
	require.NoError(t, err)

	session, err := svc.Login(ctx, "ana@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", session.UserName)
	assert.Equal(t, id, session.UserID)
	assert.Equal(t, now.Add(24*time.Hour), session.ExpiresAt)

	claims, err := svc.ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, "Ana", "ana@example.com", "s3cret")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "ana@example.com", "nope")
	_, unknownEmail := svc.Login(ctx, "bob@example.com", "s3cret")
	_, wrongCase := svc.Login(ctx, "ANA@example.com", "s3cret")

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
	assert.Equal(t, wrongPassword, wrongCase)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVerifyToken(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	clock := now
	svc, _ := newService(t, authsvc.WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	id, err := svc.Register(ctx, "Ana", "ana@example.com", "s3cret")
	require.NoError(t, err)
	session, err := svc.Login(ctx, "ana@example.com", "s3cret")
	require.NoError(t, err)

	u, err := svc.VerifyToken(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	_, err = svc.VerifyToken(ctx, "")
	assert.ErrorIs(t, err, domain.ErrTokenMissing)

	_, err = svc.VerifyToken(ctx, "not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	clock = now.Add(24*time.Hour + time.Second)
	_, err = svc.VerifyToken(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyToken_Rejected(t *testing.T) {
	now := time.Now()
	svc, _ := newService(t)
	ctx := context.Background()
	id, err := svc.Register(ctx, "Ana", "ana@example.com", "s3cret")
	require.NoError(t, err)

	valid := &authsvc.Claims{
		UserID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name: "wrong secret",
			token: func() string {
				s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, valid).SignedString([]byte("other-secret"))
				return s
			},
		},
		{
			name: "wrong algorithm",
			token: func() string {
				s, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, valid).SignedString([]byte(secret))
				return s
			},
		},
		{
			name: "no expiry",
			token: func() string {
				s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &authsvc.Claims{UserID: id}).SignedString([]byte(secret))
				return s
			},
		},
		{
			name: "no user id",
			token: func() string {
				s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &authsvc.Claims{
					RegisteredClaims: valid.RegisteredClaims,
				}).SignedString([]byte(secret))
				return s
			},
		},
		{
			name: "deleted user",
			token: func() string {
				s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &authsvc.Claims{
					UserID:           id + 100,
					RegisteredClaims: valid.RegisteredClaims,
				}).SignedString([]byte(secret))
				return s
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyToken(ctx, tt.token())
			assert.ErrorIs(t, err, domain.ErrTokenInvalid)
		})
	}
}

func TestClassifyTokenError(t *testing.T) {
	assert.NoError(t, authsvc.ClassifyTokenError(nil))
	assert.Equal(t, domain.ErrTokenExpired, authsvc.ClassifyTokenError(jwt.ErrTokenExpired))
	assert.Equal(t, domain.ErrTokenInvalid, authsvc.ClassifyTokenError(jwt.ErrTokenSignatureInvalid))
	assert.Equal(t, domain.ErrTokenMissing, authsvc.ClassifyTokenError(domain.ErrTokenMissing))
}
