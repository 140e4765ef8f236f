package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiry = errors.New("token has no exp claim")

// TokenExpiresAt reads the exp claim of a long-lived amoCRM token.
// The signature is not verified: the key belongs to amoCRM.
func TokenExpiresAt(token string) (time.Time, error) {
	claims := jwt.MapClaims{}

	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read exp claim: %w", err)
	}

	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}
