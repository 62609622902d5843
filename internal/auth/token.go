// Package auth implements the credential and token services: bcrypt
// password hashing and signed, time-limited session tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/railboard/railboard/internal/model"
)

// Token verification failure kinds. Both map to 401 at the HTTP
// boundary, but with distinguishing messages so a client can decide
// between re-login and retry.
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Identity is the set of claims a session token asserts about its
// bearer.
type Identity struct {
	ID       int64      `json:"id"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
}

// Claims is the JWT claim set: the identity fields plus the registered
// issued-at and expires-at claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64      `json:"uid"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
}

// TokenService issues and verifies HS256-signed session tokens. The
// signing secret and lifetime are fixed at construction; tokens are not
// persisted and cannot be revoked before expiry.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

// DefaultTokenLifetime is used when no lifetime is configured.
const DefaultTokenLifetime = time.Hour

// NewTokenService constructs a TokenService. A non-positive lifetime
// falls back to DefaultTokenLifetime.
func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}
	return &TokenService{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// Issue produces a signed token embedding the identity, valid from now
// for the configured lifetime.
func (s *TokenService) Issue(identity Identity) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
		UserID:   identity.ID,
		Username: identity.Username,
		Email:    identity.Email,
		Role:     identity.Role,
	})

	return token.SignedString(s.secret)
}

// Verify validates the signature and expiry of tokenString and returns
// the embedded identity.
//
// It fails with ErrTokenExpired when the token is past its expiry and
// ErrTokenInvalid for any other problem (bad signature, malformed or
// empty input, wrong signing method).
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}

	if !token.Valid {
		return Identity{}, ErrTokenInvalid
	}

	return Identity{
		ID:       claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	}, nil
}
