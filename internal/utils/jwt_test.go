package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := GenerateToken(secret, userID, "asha@example.com", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	gotID, gotEmail, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if gotID != userID || gotEmail != "asha@example.com" {
		t.Fatalf("got %v %q, want %v %q", gotID, gotEmail, userID, "asha@example.com")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", uuid.New(), "asha@example.com", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, _, err := ParseToken("secret-b", token); err == nil {
		t.Fatal("expected signature validation to fail")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", uuid.New(), "asha@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, _, err := ParseToken("secret", token); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !CheckPassword(hash, "hunter2") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("expected wrong password to fail")
	}
}
