package user

import (
	"time"
)

// User represents a user record in the database.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	FullName     string `gorm:"size:100;not null"`
	Email        string `gorm:"uniqueIndex;not null;size:100"`
	PasswordHash string `gorm:"not null;size:255"`
	CreatedAt    time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
