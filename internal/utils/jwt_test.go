package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessToken(t *testing.T) {
	tok, err := NewAccessToken("s3cret", 17, "OWNER", 15)
	if err != nil {
		t.Fatalf("new token: %v", err)
	}
	if d := time.Until(tok.Exp); d < 14*time.Minute || d > 15*time.Minute {
		t.Fatalf("unexpected expiry %v", tok.Exp)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tok.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("s3cret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse: %v", err)
	}
	if claims["sub"] != float64(17) || claims["role"] != "OWNER" {
		t.Fatalf("unexpected claims %v", claims)
	}
}

func TestNewAccessToken_Rejects(t *testing.T) {
	if _, err := NewAccessToken("", 1, "OWNER", 5); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := NewAccessToken("s", 1, "OWNER", 0); err == nil {
		t.Fatalf("expected error for zero ttl")
	}
}
