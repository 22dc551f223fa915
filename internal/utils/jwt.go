package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned when a JWT carries no exp claim.
var ErrNoExpiry = errors.New("token has no expiration claim")

// ExpiryFromJWT reads the exp claim of tokenString without verifying the
// signature. The token is issued for the registry, not for us, so the key is
// never available here.
//
// Returns ErrNoExpiry when the claim is absent, or a parse error when
// tokenString is not a JWT at all.
func ExpiryFromJWT(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}
