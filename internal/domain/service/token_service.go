// Package service defines domain service interfaces implemented by infra.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// OperatorClaims defines the custom claims for admin session tokens.
type OperatorClaims struct {
	Subject string // Fixed operator subject, there is a single operator.
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating the admin
// session token. This abstracts token details from the use cases.
type TokenService interface {
	// GenerateToken creates a new access token for the operator.
	GenerateToken() (accessToken string, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*OperatorClaims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
