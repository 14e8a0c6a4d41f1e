package user

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/utils"
)

// Column limits, in characters.
const (
	MaxFullNameLength = 100
	MaxEmailLength    = 100
)

// User represents a registered account holder.
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// New validates the registration fields and hashes the password with the
// given bcrypt cost. The email is kept exactly as typed.
func New(fullName, email, password string, cost int) (*User, error) {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, domain.NewValidationError("full name, email and password are required")
	}
	if utf8.RuneCountInString(fullName) > MaxFullNameLength {
		return nil, domain.NewValidationError("full name must be at most %d characters", MaxFullNameLength)
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return nil, domain.NewValidationError("email must be at most %d characters", MaxEmailLength)
	}
	if len(password) > utils.MaxPasswordBytes {
		return nil, domain.NewValidationError("password must be at most %d bytes", utils.MaxPasswordBytes)
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	return &User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
