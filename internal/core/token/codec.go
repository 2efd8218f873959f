// Package token implements the stateless bearer-token codec. Tokens are
// compact JWTs signed with HMAC-SHA256 over {sub, iat, exp}; verification
// needs no server-side state beyond the process-wide secret.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformed = errors.New("malformed token")
var ErrBadSignature = errors.New("invalid token signature")
var ErrExpired = errors.New("token expired")

const defaultTTL = 24 * time.Hour

// Codec signs and verifies bearer tokens with a symmetric key.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec signing with secret. If ttl <= 0, defaultTTL is used.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL reports the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue produces a signed token for subject, valid from issuedAt until
// issuedAt + TTL.
func (c *Codec) Issue(subject string, issuedAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and checks raw against the configured secret, evaluating
// expiry at now. It returns the token subject, or exactly one of
// ErrBadSignature, ErrExpired, ErrMalformed.
func (c *Codec) Verify(raw string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		default:
			return "", ErrMalformed
		}
	}

	return claims.Subject, nil
}
