package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orangeplan/user-management/internal/core/domain"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret")

	token, err := codec.Encode(jwt.MapClaims{"sub": "alice", "role": "admin"}, time.Minute)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if Subject(claims) != "alice" {
		t.Fatalf("unexpected subject: %v", claims["sub"])
	}
	if claims["role"] != "admin" {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim to be set")
	}
}

func TestTokenCodec_EncodeDoesNotMutateInput(t *testing.T) {
	codec := NewTokenCodec("secret")
	claims := jwt.MapClaims{"sub": "alice"}

	if _, err := codec.Encode(claims, time.Minute); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if _, ok := claims["exp"]; ok {
		t.Fatalf("encode must not mutate the caller's claims")
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec("secret")

	token, err := codec.Encode(jwt.MapClaims{"sub": "alice"}, -time.Minute)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if _, err := codec.Decode(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenCodec_InvalidToken(t *testing.T) {
	codec := NewTokenCodec("secret")

	token, err := codec.Encode(jwt.MapClaims{"sub": "alice"}, time.Minute)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	cases := map[string]string{
		"garbage":      "not-a-token",
		"empty":        "",
		"tampered":     token + "x",
		"wrong secret": mustSign(t, "other-secret"),
	}
	for name, tkn := range cases {
		if _, err := codec.Decode(tkn); err != domain.ErrInvalidToken {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestTokenCodec_RejectsUnexpectedAlgorithm(t *testing.T) {
	codec := NewTokenCodec("secret")

	// alg=none tokens must never decode.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "alice"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := codec.Decode(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func mustSign(t *testing.T, secret string) string {
	t.Helper()
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := tkn.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	return signed
}
