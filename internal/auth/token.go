package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes the exp claim of a JWT without verifying its
// signature. Signature verification is the backend's job; the client only
// reads the claim to decide whether the token is worth sending at all.
//
// A token that parses but carries no exp claim yields a zero time and no
// error: the backend decides its validity. An unparseable token is an error
// and must be treated the same as an expired one.
func TokenExpiry(token string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to decode token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}
