package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of claims the client cares about when the stored
// auth token happens to be a JWT.
type TokenClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ParseTokenClaims decodes the token without verifying its signature; the
// client has no signing key and only uses the claims for display. Opaque
// (non-JWT) tokens return ok=false and are otherwise treated normally.
func ParseTokenClaims(token string) (*TokenClaims, bool) {
	if token == "" {
		return nil, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &TokenClaims{})
	if err != nil {
		return nil, false
	}
	claims, ok := parsed.Claims.(*TokenClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

// ExpiresAt returns the token expiry, or the zero time when absent.
func (c *TokenClaims) ExpiresAt() time.Time {
	if c == nil || c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}
	return c.RegisteredClaims.ExpiresAt.Time
}
