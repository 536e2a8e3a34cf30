package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by service tokens.
type Claims struct {
	Service string   `json:"service"`
	Roles   []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the tokens used by trusted backends
// calling the bot's HTTP API.
type TokenService interface {
	// GenerateServiceToken creates a signed token for a named service.
	GenerateServiceToken(serviceName string, roles []string, ttl time.Duration) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
