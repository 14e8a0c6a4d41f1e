package dto

import "github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"

// CategoryCreate is a DTO for inserting a category.
type CategoryCreate struct {
	UserID    int64
	Name      string
	Type      domain.EntryType
	IsDefault bool
}

// CategoryRead is the read view of a category.
type CategoryRead struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"-"`
	Name      string           `json:"name"`
	Type      domain.EntryType `json:"type"`
	IsDefault bool             `json:"is_default"`
}
