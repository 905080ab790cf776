package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPassword_Roundtrip(t *testing.T) {
	salt := NewSalt()
	verifier := HashPassword([]byte("hunter2"), salt)

	assert.True(t, VerifyPassword([]byte("hunter2"), salt, verifier))
	assert.False(t, VerifyPassword([]byte("hunter3"), salt, verifier))
}

func TestHashPassword_SaltChangesVerifier(t *testing.T) {
	s1, s2 := NewSalt(), NewSalt()
	require.NotEqual(t, s1, s2)

	v1 := HashPassword([]byte("admin123"), s1)
	v2 := HashPassword([]byte("admin123"), s2)
	assert.NotEqual(t, v1, v2, "same passphrase must hash differently per salt")
}

func TestHashPassword_Deterministic(t *testing.T) {
	salt := NewSalt()
	assert.Equal(t, HashPassword([]byte("pw"), salt), HashPassword([]byte("pw"), salt))
}

func TestVerifyPassword_WrongSalt(t *testing.T) {
	salt := NewSalt()
	verifier := HashPassword([]byte("pw"), salt)
	assert.False(t, VerifyPassword([]byte("pw"), NewSalt(), verifier))
}
