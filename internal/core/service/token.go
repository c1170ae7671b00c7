package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orangeplan/user-management/internal/core/domain"
)

// TokenCodec encodes and decodes HS256-signed claim sets. The secret is
// process-wide configuration; rotating it invalidates all outstanding tokens.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Encode signs the claims together with an absolute expiry ttl from now.
func (tc *TokenCodec) Encode(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	encoded := jwt.MapClaims{}
	for k, v := range claims {
		encoded[k] = v
	}
	encoded["exp"] = time.Now().Add(ttl).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, encoded)
	return t.SignedString(tc.secret)
}

// Decode verifies signature and expiry. Expiry is distinguished from all
// other failures so callers can suggest refreshing.
func (tc *TokenCodec) Decode(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// Subject extracts the "sub" claim, or "" when absent or not a string.
func Subject(claims jwt.MapClaims) string {
	sub, _ := claims["sub"].(string)
	return sub
}
