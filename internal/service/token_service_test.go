package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenService(t *testing.T, cfg TokenConfig) *TokenServiceImpl {
	t.Helper()
	svc, err := NewTokenService(cfg)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService(t *testing.T) {
	_, err := NewTokenService(TokenConfig{})
	assert.ErrorIs(t, err, ErrEmptySecret)

	svc := newTokenService(t, TokenConfig{SecretKey: "secret"})
	assert.Equal(t, DefaultTokenTTL, svc.ttl)
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := newTokenService(t, TokenConfig{SecretKey: "secret", TTL: time.Hour, Issuer: "bag-pricing"})

	token, err := svc.Issue("anna", []string{"economist"})
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "anna", claims.Subject)
	assert.Equal(t, []string{"economist"}, claims.Roles)
}

func TestTokenService_IssueRequiresSubject(t *testing.T) {
	svc := newTokenService(t, TokenConfig{SecretKey: "secret"})

	_, err := svc.Issue("", nil)
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestTokenService_Validate(t *testing.T) {
	svc := newTokenService(t, TokenConfig{SecretKey: "secret", TTL: time.Hour})
	valid, err := svc.Issue("anna", nil)
	require.NoError(t, err)

	otherKey := newTokenService(t, TokenConfig{SecretKey: "other"})
	foreign, err := otherKey.Issue("anna", nil)
	require.NoError(t, err)

	expiredSvc := newTokenService(t, TokenConfig{SecretKey: "secret", TTL: time.Minute})
	expiredSvc.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, err := expiredSvc.Issue("anna", nil)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "anna"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid", valid, false},
		{"garbage", "not-a-token", true},
		{"empty", "", true},
		{"other key", foreign, true},
		{"expired", expired, true},
		{"unsigned", none, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTokenService_IssuerMismatch(t *testing.T) {
	issuer := newTokenService(t, TokenConfig{SecretKey: "secret", Issuer: "a"})
	verifier := newTokenService(t, TokenConfig{SecretKey: "secret", Issuer: "b"})

	token, err := issuer.Issue("anna", nil)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
