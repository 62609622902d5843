package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/railboard/railboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	identity := Identity{
		ID:       42,
		Username: "alice",
		Email:    "alice@example.com",
		Role:     model.RoleAdmin,
	}

	token, err := svc.Issue(identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := &TokenService{secret: []byte("test-secret"), lifetime: -time.Minute}

	token, err := svc.Issue(Identity{ID: 1, Username: "bob", Role: model.RoleUser})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, err := issuer.Issue(Identity{ID: 1, Username: "bob", Role: model.RoleUser})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", token)
	}
}

func TestTokenService_Verify_RejectsUnsignedToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:   1,
		Username: "mallory",
		Role:     model.RoleAdmin,
	})

	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewTokenService_DefaultLifetime(t *testing.T) {
	svc := NewTokenService("test-secret", 0)
	assert.Equal(t, DefaultTokenLifetime, svc.lifetime)

	svc = NewTokenService("test-secret", -time.Second)
	assert.Equal(t, DefaultTokenLifetime, svc.lifetime)
}
