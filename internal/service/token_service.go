package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/guttosm/bag-pricing-service/internal/domain/dto"
)

var (
	// ErrInvalidToken is returned when a token is malformed, expired or signed
	// with another key.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrEmptySubject is returned when a token is requested without a subject.
	ErrEmptySubject = errors.New("token subject is required")
	// ErrEmptySecret is returned when the token service has no signing key.
	ErrEmptySecret = errors.New("jwt secret key is required")
)

// DefaultTokenTTL is the lifetime of issued access tokens.
const DefaultTokenTTL = 8 * time.Hour

// TokenService issues and validates HS256 access tokens. Tokens are not
// stored; validity is decided by signature and expiry alone.
type TokenService interface {
	Issue(subject string, roles []string) (string, error)
	Validate(tokenString string) (*dto.Claims, error)
}

// ClaimsWithJWT embeds the service claims into the registered JWT claims.
type ClaimsWithJWT struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenServiceImpl implements TokenService.
type TokenServiceImpl struct {
	secretKey []byte
	ttl       time.Duration
	issuer    string
	now       func() time.Time
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey string
	TTL       time.Duration
	Issuer    string
}

// NewTokenService creates a token service. A zero TTL uses DefaultTokenTTL.
func NewTokenService(cfg TokenConfig) (*TokenServiceImpl, error) {
	if cfg.SecretKey == "" {
		return nil, ErrEmptySecret
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTokenTTL
	}
	return &TokenServiceImpl{
		secretKey: []byte(cfg.SecretKey),
		ttl:       cfg.TTL,
		issuer:    cfg.Issuer,
		now:       time.Now,
	}, nil
}

// Issue signs an access token for subject with the given roles.
func (s *TokenServiceImpl) Issue(subject string, roles []string) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}
	issuedAt := s.now()
	claims := &ClaimsWithJWT{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate checks the signature and expiry of tokenString and returns its claims.
func (s *TokenServiceImpl) Validate(tokenString string) (*dto.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(*jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ClaimsWithJWT)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &dto.Claims{Subject: claims.Subject, Roles: claims.Roles}, nil
}
