// Package cryptox implements the credential scheme: a passphrase is
// stretched with argon2id using a per-user random salt, and a SHA-256
// digest of the stretched key is stored as the verifier. Login recomputes
// the verifier and compares it in constant time.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"

	"github.com/avolkov/termlock/internal/common"
)

const (
	SaltSize = 32

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// NewSalt returns a fresh random per-user salt.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// DeriveKey stretches a passphrase with argon2id and the given salt.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// MakeVerifier computes the stored verifier for a derived key.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// HashPassword derives the verifier for (password, salt) in one step.
// The intermediate key is wiped before returning.
func HashPassword(password []byte, salt []byte) []byte {
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	return MakeVerifier(key)
}

// VerifyPassword reports whether password matches the stored (salt, verifier)
// pair. Comparison is constant time over the verifier contents.
func VerifyPassword(password []byte, salt []byte, verifier []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}
