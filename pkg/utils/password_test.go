package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-password-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret-password-1", hash)

	assert.True(t, CheckPassword(hash, "secret-password-1"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	first, err := HashPassword("same-input")
	assert.NoError(t, err)
	second, err := HashPassword("same-input")
	assert.NoError(t, err)

	// bcrypt salts every hash; both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "same-input"))
	assert.True(t, CheckPassword(second, "same-input"))
}
