package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "NotFound wraps ErrNotFound",
			err:       NotFound("User"),
			target:    ErrNotFound,
			wantMatch: true,
		},
		{
			name:      "ValidationFailed wraps ErrValidation",
			err:       ValidationFailed("username", "too short"),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "Conflict wraps ErrConflict",
			err:       Conflict("email"),
			target:    ErrConflict,
			wantMatch: true,
		},
		{
			name:      "NotFound does not match ErrConflict",
			err:       NotFound("User"),
			target:    ErrConflict,
			wantMatch: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMatch, errors.Is(tt.err, tt.target))
		})
	}
}

func TestMessages(t *testing.T) {
	assert.EqualError(t, NotFound("User"), "User not found")
	assert.EqualError(t, Conflict("email"), "email already exists")
	assert.Equal(t, "username", ValidationFailed("username", "too short").Field)
}
