package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier errors. Callers are expected to treat every verification
// failure identically; the distinction exists for logging.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingEmail = errors.New("token has no email claim")
)

// Verifier validates a bearer credential and yields the account email it
// was issued for.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// tokenClaims is the claim set issued by the identity provider.
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// jwtVerifier verifies HMAC-SHA256 signed tokens with a shared secret.
type jwtVerifier struct {
	signingKey []byte
}

var _ Verifier = (*jwtVerifier)(nil)

// NewJWTVerifier returns a Verifier for HS256 tokens signed with secret.
func NewJWTVerifier(secret string) (Verifier, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("token secret must be at least 32 characters")
	}
	return &jwtVerifier{signingKey: []byte(secret)}, nil
}

// Verify parses and validates the token and returns the email claim.
func (v *jwtVerifier) Verify(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Email == "" {
		return "", ErrMissingEmail
	}
	return claims.Email, nil
}
