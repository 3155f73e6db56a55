package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostStringTruncatesToPreview(t *testing.T) {
	assert.Equal(t, "Test text", Post{Text: "Test text"}.String())

	long := Post{Text: strings.Repeat("ж", 40)}
	assert.Equal(t, strings.Repeat("ж", PostPreviewLen), long.String())
}

func TestGroupStringIsTitle(t *testing.T) {
	assert.Equal(t, "Test group", Group{Title: "Test group", Slug: "test-slug"}.String())
}

func TestUserFullNameFallsBackToUsername(t *testing.T) {
	assert.Equal(t, "leo", User{Username: "leo"}.FullName())
	assert.Equal(t, "Lev Tolstoy", User{Username: "leo", FirstName: "Lev", LastName: "Tolstoy"}.FullName())
}
