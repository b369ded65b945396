package entity

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_HasDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        bool
	}{
		{name: "plain text", description: "Markets rallied on Monday.", want: true},
		{name: "empty", description: "", want: false},
		{name: "whitespace only", description: "  \n\t ", want: false},
		{name: "removed placeholder", description: "[Removed]", want: false},
		{name: "removed placeholder padded", description: " [Removed] ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Article{Description: tt.description}
			assert.Equal(t, tt.want, a.HasDescription())
		})
	}
}

func TestArticle_Validate(t *testing.T) {
	valid := Article{
		Title:       "Headline",
		Source:      "bbc-news",
		Description: "Something happened",
		URL:         "https://example.com/a",
	}
	require.NoError(t, valid.Validate())

	noURL := valid
	noURL.URL = " "
	err := noURL.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Contains(t, err.Error(), "'url'")

	noDesc := valid
	noDesc.Description = ""
	err = noDesc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'description'")
}

func TestArticle_JSONFieldNames(t *testing.T) {
	a := Article{Title: "T", Source: "cnn", Description: "D", URL: "https://example.com"}

	b, err := json.Marshal(a)
	require.NoError(t, err)

	assert.JSONEq(t, `{"title":"T","source":"cnn","description":"D","url":"https://example.com"}`, string(b))
}
