package id

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validPattern = regexp.MustCompile(`^[a-f0-9]+[a-z0-9]{12}$`)

func TestUnique_Format(t *testing.T) {
	fileID, err := Unique()
	require.NoError(t, err)
	assert.Regexp(t, validPattern, fileID)
	assert.True(t, Valid(fileID))
}

func TestUnique_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		fileID, err := Unique()
		require.NoError(t, err)
		assert.False(t, seen[fileID], "collision: %s", fileID)
		seen[fileID] = true
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("68a1c2f3abcdefghijkl"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("has spaces"))
	assert.False(t, Valid("UPPERCASE"))
	assert.False(t, Valid("https://example.com/file"))
}
