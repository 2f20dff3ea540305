package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_FreshSaltEachTime(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("abc12345")
	require.NoError(t, err)
	h2, err := HashPassword("abc12345")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword(h1, "abc12345"))
	assert.True(t, CheckPassword(h2, "abc12345"))
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("abc12345")
	require.NoError(t, err)
	assert.False(t, CheckPassword(h, "abc12346"))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	// Corrupted storage must read as a plain mismatch, not a panic or error.
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "abc12345"))
	assert.False(t, CheckPassword("", "abc12345"))
}
