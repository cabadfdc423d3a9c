package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordAndCheck(t *testing.T) {
	hash, err := HashPassword("1234")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "1234", hash)

	assert.True(t, CheckPassword(hash, "1234"))
	assert.False(t, CheckPassword(hash, "12345"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPasswordRejectsNonHash(t *testing.T) {
	assert.False(t, CheckPassword("plainly-not-a-bcrypt-hash", "1234"))
}
