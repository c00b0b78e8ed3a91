package service

import (
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTitles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Home - ", HomeTitle())
	assert.Equal(t, "Tech posts - ", CategoryTitle(&models.Category{Name: "Tech"}))
	assert.Equal(t, "go posts - ", TagTitle(&models.Tag{Name: "go"}))
	assert.Equal(t, `Results for "coffee" - `, SearchTitle("coffee"))
	assert.Equal(t, "Hello World - ", DetailTitle("Hello World"))
}

func TestAuthorTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		author   models.Author
		expected string
	}{
		{
			name:     "full name",
			author:   models.Author{Username: "jdoe", FirstName: "Jane", LastName: "Doe"},
			expected: "Jane Doe posts - ",
		},
		{
			name:     "first name only",
			author:   models.Author{Username: "jdoe", FirstName: "Jane"},
			expected: "Jane posts - ",
		},
		{
			name:     "last name only",
			author:   models.Author{Username: "jdoe", LastName: "Doe"},
			expected: "Doe posts - ",
		},
		{
			name:     "falls back to username",
			author:   models.Author{Username: "jdoe"},
			expected: "jdoe posts - ",
		},
		{
			name:     "whitespace-only names fall back to username",
			author:   models.Author{Username: "jdoe", FirstName: "  ", LastName: " "},
			expected: "jdoe posts - ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AuthorTitle(&tt.author))
		})
	}
}
