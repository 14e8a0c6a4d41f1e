package dto

import (
	"time"
)

// UserCreate represents the data needed to create a new user.
type UserCreate struct {
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// Session is the outcome of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	UserID    int64
	UserName  string
}
