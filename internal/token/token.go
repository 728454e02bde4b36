// Package token signs and verifies the access tokens handed out on
// login. A token is a self-contained HS256 JWT asserting the user's id
// and email, valid for a fixed window after issuance.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = time.Hour

var (
	// ErrMissingSecret means the signing secret was never configured.
	// Callers must treat this as a hard failure, not an empty token.
	ErrMissingSecret = errors.New("signing secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// Claims carried by every issued token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userID"`
	Email  string `json:"email"`
}

// Manager issues and parses tokens. Stateless: the output depends only
// on the secret, the claims and the clock.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a fresh token asserting the given user identity.
func (m *Manager) Issue(userID, email string) (string, error) {
	if len(m.secret) == 0 {
		return "", ErrMissingSecret
	}
	now := m.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Email:  email,
	})
	return tok.SignedString(m.secret)
}

// Parse verifies signature, signing method and expiry, and returns the claims.
func (m *Manager) Parse(accessToken string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
