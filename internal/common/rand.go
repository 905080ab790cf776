package common

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics if the system random source fails, which matches the
// crypto/rand contract of never partially succeeding.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// MakeRandHexString generates a random hexadecimal string from size random
// bytes. The resulting string is twice as long as size, since every byte
// expands to two hex characters.
func MakeRandHexString(size int) string {
	return hex.EncodeToString(GenerateRandByteArray(size))
}

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Useful for removing passphrases and derived keys from memory once
// they are no longer needed. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
