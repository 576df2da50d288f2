// Package auth implements token issuance, token verification, and the
// in-process session registry backing request authorization.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSecret is returned by NewManager when no signing secret is supplied.
var ErrNoSecret = errors.New("auth: signing secret is empty")

// Claims is the payload carried by an issued token.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Manager issues and verifies signed, time-limited session tokens (HS256).
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager creates a token manager signing with secret. Tokens are valid
// for ttl from the moment of issuance. An empty secret is rejected so the
// caller can fail fast at startup.
func NewManager(secret []byte, ttl time.Duration) (*Manager, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{secret: secret, ttl: ttl, now: time.Now}, nil
}

// Issue produces a signed token binding username, expiring ttl from now.
func (m *Manager) Issue(username string) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Username: username,
	})
	return token.SignedString(m.secret)
}

// Verify decodes and validates tokenString. It is total: any failure —
// malformed input, wrong signature, wrong signing method, expiry — yields
// (Claims{}, false) rather than an error, so callers can branch on the
// second return alone.
func (m *Manager) Verify(tokenString string) (Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return Claims{}, false
	}
	return *claims, true
}
