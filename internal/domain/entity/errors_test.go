package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "required field error",
			field:    "url",
			message:  "is required",
			expected: "validation error on field 'url': is required",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
		{
			name:     "empty message",
			field:    "description",
			message:  "",
			expected: "validation error on field 'description': ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{
				Field:   tt.field,
				Message: tt.message,
			}

			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	var err error = &ValidationError{Field: "url", Message: "is required"}

	assert.True(t, errors.Is(err, ErrValidationFailed))

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "url", ve.Field)
}
