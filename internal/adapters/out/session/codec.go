// Package session signs caller identities into HS256 JWTs and parses them
// back, so a caller can hold its Identity without a server-side session.
package session

import (
	"errors"
	"math"
	"time"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "pizzastore"

var (
	ErrEmptySecret  = errors.New("session secret must not be empty")
	ErrInvalidToken = errors.New("session token is invalid or expired")
)

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("ttl", ttl, time.Nanosecond, time.Duration(math.MaxInt64))
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Sign issues a token carrying the caller's login as subject and role claim.
func (c *Codec) Sign(caller identity.Identity) (string, error) {
	if err := caller.Validate(); err != nil {
		return "", err
	}

	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: caller.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        kernel.NewUUID().String(),
			Issuer:    issuer,
			Subject:   caller.Login().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	return token.SignedString(c.secret)
}

// Parse verifies the signature and expiry and rebuilds the Identity. Every
// failure is an authentication error wrapping ErrInvalidToken.
func (c *Codec) Parse(token string) (identity.Identity, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return identity.Identity{}, errs.NewAuthenticationFailedErrorWithCause(errors.Join(ErrInvalidToken, err))
	}

	login, err := kernel.NewLogin(parsed.Subject)
	if err != nil {
		return identity.Identity{}, errs.NewAuthenticationFailedErrorWithCause(errors.Join(ErrInvalidToken, err))
	}
	role, err := identity.ParseRole(parsed.Role)
	if err != nil {
		return identity.Identity{}, errs.NewAuthenticationFailedErrorWithCause(errors.Join(ErrInvalidToken, err))
	}

	return identity.NewIdentity(login, role)
}
