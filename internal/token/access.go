// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

// Package token issues and verifies the two signed token kinds: short-lived
// access tokens for authenticated requests and salted reset tokens for the
// password recovery flow. Both are stateless; the server keeps no record of
// issued tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when a well-formed access token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed is returned for damaged structure or a bad signature.
	ErrTokenMalformed = errors.New("token malformed")
)

// AccessCodec issues signed JWTs carrying a user identifier.
type AccessCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type accessClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// NewAccessCodec creates a codec with the process-wide secret and lifetime.
func NewAccessCodec(secret string, ttl time.Duration) *AccessCodec {
	return &AccessCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue produces a signed token embedding the user identifier with an
// absolute expiry of issuance time plus the configured lifetime.
func (c *AccessCodec) Issue(userID int64) (string, error) {
	now := c.now()
	claims := accessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded user
// identifier. Expiry and structural damage are distinguished so the caller
// can report them separately.
func (c *AccessCodec) Verify(tokenString string) (int64, error) {
	var claims accessClaims
	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return 0, ErrTokenExpired
	case err != nil:
		return 0, ErrTokenMalformed
	case !tok.Valid:
		return 0, ErrTokenMalformed
	}

	return claims.UserID, nil
}
