package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenErrorsAreUnauthorized(t *testing.T) {
	for _, err := range []error{ErrTokenMissing, ErrTokenExpired, ErrTokenInvalid, ErrInvalidCredentials} {
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.True(t, IsKnown(err))
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("amount must be positive")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation error: amount must be positive", err.Error())
	assert.False(t, IsKnown(errors.New("connection refused")))
}

func TestParseEntryType(t *testing.T) {
	tests := []struct {
		in      string
		want    EntryType
		wantErr bool
	}{
		{"INCOME", Income, false},
		{"expense", Expense, false},
		{" Income ", Income, false},
		{"transfer", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		got, err := ParseEntryType(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrValidation, tc.in)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}
