// Package auth holds the client-side pieces of authentication: token
// inspection and registration validation. Passwords are verified by the
// server; nothing here handles hashes or signing keys.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of the server's JWT payload the client reads.
type TokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// InspectToken decodes a JWT without verifying its signature. The client has
// no signing key; possession of a token is never trusted anyway and must be
// confirmed by an identity fetch. The claims are only used to decide whether
// a refresh is worth attempting before that fetch.
func InspectToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("malformed token: %w", err)
	}
	return claims, nil
}

// Expired reports whether the token's exp claim is in the past. Malformed
// tokens and tokens without an expiry count as expired.
func Expired(tokenString string, now time.Time) bool {
	claims, err := InspectToken(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return !claims.ExpiresAt.After(now)
}
