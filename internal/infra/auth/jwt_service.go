// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"marketbot/config"
	"marketbot/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	issuer     = "marketbot"
	defaultTTL = 30 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using HS256 tokens.
type jwtService struct {
	secret     []byte
	defaultTTL time.Duration
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Service == "" {
		return nil, errors.New("service token secret must be provided")
	}

	ttl := cfg.SecretKey.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &jwtService{
		secret:     []byte(cfg.SecretKey.Service),
		defaultTTL: ttl,
		now:        time.Now,
	}, nil
}

// GenerateServiceToken creates a signed token for serviceName. A non positive
// ttl falls back to the configured default.
func (s *jwtService) GenerateServiceToken(serviceName string, roles []string, ttl time.Duration) (string, error) {
	if serviceName == "" {
		return "", errors.New("service name is required")
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := s.now()
	claims := &service.Claims{
		Service: serviceName,
		Roles:   roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   serviceName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign service token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse service token")
	}
	if !token.Valid {
		return nil, errors.New("service token is not valid")
	}

	return claims, nil
}
