package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("секретный-пароль-123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword("секретный-пароль-123", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("правильный")
	require.NoError(t, err)

	ok, err := VerifyPassword("неправильный", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	first, err := HashPassword("пароль")
	require.NoError(t, err)

	second, err := HashPassword("пароль")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("пароль", "совсем не хеш")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestVerifyPassword_IncompatibleVersion(t *testing.T) {
	_, err := VerifyPassword("пароль", "$argon2id$v=18$m=65536,t=1,p=4$c29sdA$aGFzaA")
	assert.ErrorIs(t, err, ErrIncompatibleVersion)
}

func TestGenerateRandomToken(t *testing.T) {
	first, err := GenerateRandomToken(32)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := GenerateRandomToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
