package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenGenerator signs access tokens for the protected order routes
type TokenGenerator struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
	// Issuer is placed in the iss claim when set
	Issuer string
	now    func() time.Time
}

// NewTokenGenerator creates a generator signing with HS256
func NewTokenGenerator(key []byte) *TokenGenerator {
	return &TokenGenerator{
		SignedKey:    key,
		SignedMethod: jwt.SigningMethodHS256,
		Issuer:       "pizza-factory",
		now:          time.Now,
	}
}

// Token generates a JWT carrying the subject and role, valid for ttl
func (g *TokenGenerator) Token(subject, role string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("cannot generate token: empty subject")
	}
	if role == "" {
		return "", errors.New("cannot generate token: empty role")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("cannot generate token: ttl must be positive, got %s", ttl)
	}

	now := g.now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	if g.Issuer != "" {
		claims["iss"] = g.Issuer
	}

	token := jwt.NewWithClaims(g.SignedMethod, claims)
	return token.SignedString(g.SignedKey)
}
