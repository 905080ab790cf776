package session

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avolkov/termlock/internal/common"
)

// Claims carries the standard claims plus the authenticated username.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenManager persists a signed HS256 resume token in a file. The signing
// secret is per install; an attacker who can read it can also read the
// credential database, so it adds no new exposure.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	path   string
}

func NewTokenManager(secret []byte, ttl time.Duration, path string) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl, path: path}
}

// LoadOrCreateSecret reads the signing secret from path, generating and
// persisting a fresh one (0600) on first use.
func LoadOrCreateSecret(path string) ([]byte, error) {
	secret, err := os.ReadFile(path)
	if err == nil && len(secret) > 0 {
		return secret, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	secret = common.GenerateRandByteArray(32)
	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, err
	}
	return secret, nil
}

// Issue writes a resume token for username, valid for the configured TTL.
func (m *TokenManager) Issue(username string) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Username: username,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, []byte(signed), 0o600)
}

// Resume returns the username of a valid, unexpired token. An absent token
// yields common.ErrorNotFound; an expired one yields common.ErrTokenExpired
// and the file is removed; any other invalid token yields
// common.ErrInvalidToken and the file is removed.
func (m *TokenManager) Resume() (string, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", common.ErrorNotFound
		}
		return "", err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(string(data), claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		m.Clear()
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}
	if !token.Valid || claims.Username == "" {
		m.Clear()
		return "", common.ErrInvalidToken
	}
	return claims.Username, nil
}

// Clear removes the persisted token, if any.
func (m *TokenManager) Clear() {
	_ = os.Remove(m.path)
}
