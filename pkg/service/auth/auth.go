// Package auth registers users, logs them in and verifies the bearer tokens
// issued at login.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/config"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain/category"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain/user"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository"
	categoryrepo "github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/category"
	userrepo "github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/user"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/service"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the JWT claims carried by session tokens.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

type Option func(*Service)

// WithClock replaces time.Now for token issuance and verification.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Auth
	logger *slog.Logger
	now    func() time.Time

	dummyHash func() string
}

func New(
	uow repository.UnitOfWork,
	cfg *config.Auth,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{uow: uow, cfg: cfg, logger: logger, now: time.Now}
	// Compared against when the email is unknown so both failure paths cost
	// one bcrypt comparison at the configured cost.
	s.dummyHash = sync.OnceValue(func() string {
		hash, _ := utils.HashPassword("gestomoney-timing-placeholder", cfg.BcryptCost)
		return hash
	})
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates the user and seeds their default categories in one unit
// of work, returning the new user id.
func (s *Service) Register(
	ctx context.Context,
	fullName, email, password string,
) (userID int64, err error) {
	log := s.logger.With("context", "Register", "email", email)
	log.Debug("Register called")

	u, err := user.New(fullName, email, password, s.cfg.BcryptCost)
	if err != nil {
		log.Info("Register rejected", "error", err)
		return 0, service.Internal(log, err)
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		exists, err := users.ExistsByEmail(ctx, u.Email)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: email already registered", domain.ErrAlreadyExists)
		}
		userID, err = users.Create(ctx, &dto.UserCreate{
			FullName:     u.FullName,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt,
		})
		if err != nil {
			return err
		}

		categories, err := repository.Get[categoryrepo.Repository](uow)
		if err != nil {
			return err
		}
		defaults := category.Defaults(userID)
		creates := make([]dto.CategoryCreate, 0, len(defaults))
		for _, c := range defaults {
			creates = append(creates, dto.CategoryCreate{
				UserID:    c.UserID,
				Name:      c.Name,
				Type:      c.Type,
				IsDefault: c.IsDefault,
			})
		}
		return categories.CreateBatch(ctx, creates)
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			log.Info("Register rejected", "error", err)
			return 0, fmt.Errorf("%w: email already registered", domain.ErrAlreadyExists)
		}
		return 0, service.Internal(log, err)
	}
	log.Info("Register successful", "userID", userID)
	return userID, nil
}

// Login checks the credentials and issues a session token. Unknown emails and
// wrong passwords fail identically.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (*dto.Session, error) {
	log := s.logger.With("context", "Login", "email", email)
	log.Debug("Login called")
	if email == "" || password == "" {
		return nil, domain.NewValidationError("email and password are required")
	}

	var u *dto.UserRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err = users.GetByEmail(ctx, email)
		return err
	})
	if err != nil {
		return nil, service.Internal(log, err)
	}

	if u == nil {
		_ = utils.CheckPasswordHash(password, s.dummyHash())
		log.Info("Login failed", "error", domain.ErrInvalidCredentials)
		return nil, domain.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, u.HashedPassword) {
		log.Info("Login failed", "userID", u.ID, "error", domain.ErrInvalidCredentials)
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateToken(u.ID)
	if err != nil {
		return nil, service.Internal(log, err)
	}
	log.Info("Login successful", "userID", u.ID)
	return &dto.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    u.ID,
		UserName:  u.FullName,
	}, nil
}

// GenerateToken signs an HS256 token for userID that expires after the
// configured lifetime.
func (s *Service) GenerateToken(userID int64) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.cfg.Jwt.Expiry)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString([]byte(s.cfg.Jwt.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken verifies the signature, algorithm and expiry of raw.
func (s *Service) ParseToken(raw string) (*Claims, error) {
	if raw == "" {
		return nil, domain.ErrTokenMissing
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, s.KeyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ClassifyTokenError(err)
	}
	return claims, nil
}

// KeyFunc returns the signing secret for HS256 tokens. ParseToken and the
// HTTP gate both verify through it.
func (s *Service) KeyFunc(token *jwt.Token) (any, error) {
	if token.Method != jwt.SigningMethodHS256 {
		return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
	}
	return []byte(s.cfg.Jwt.Secret), nil
}

// VerifyToken resolves raw to the user it was issued for.
func (s *Service) VerifyToken(ctx context.Context, raw string) (*dto.UserRead, error) {
	claims, err := s.ParseToken(raw)
	if err != nil {
		return nil, err
	}
	return s.Authenticate(ctx, claims)
}

// Authenticate loads the user named by already verified claims. A token for a
// user that no longer exists is invalid.
func (s *Service) Authenticate(ctx context.Context, claims *Claims) (*dto.UserRead, error) {
	log := s.logger.With("context", "Authenticate")
	if claims == nil || claims.UserID <= 0 || claims.ExpiresAt == nil {
		return nil, domain.ErrTokenInvalid
	}

	var u *dto.UserRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err = users.Get(ctx, claims.UserID)
		return err
	})
	if err != nil {
		return nil, service.Internal(log, err)
	}
	if u == nil {
		log.Info("Token for unknown user", "userID", claims.UserID)
		return nil, domain.ErrTokenInvalid
	}
	log.Debug("Authenticate successful", "userID", u.ID)
	return u, nil
}

// ClassifyTokenError maps a jwt parsing failure onto the token errors.
func ClassifyTokenError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrUnauthorized):
		return err
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	default:
		return domain.ErrTokenInvalid
	}
}
