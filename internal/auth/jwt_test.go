package auth

import (
	"testing"
	"time"
)

func TestSignAndParseSessionToken(t *testing.T) {
	t.Setenv("SESSION_SECRET", "super-secret")

	tok, err := SignSessionToken("sess-123", time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken error: %v", err)
	}

	got, err := ParseSessionToken(tok)
	if err != nil {
		t.Fatalf("ParseSessionToken error: %v", err)
	}
	if got != "sess-123" {
		t.Fatalf("session id mismatch: got %q want %q", got, "sess-123")
	}
}

func TestParseSessionToken_Expired(t *testing.T) {
	t.Setenv("SESSION_SECRET", "super-secret")

	tok, err := SignSessionToken("sess-123", -time.Second)
	if err != nil {
		t.Fatalf("SignSessionToken error: %v", err)
	}

	if _, err := ParseSessionToken(tok); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "right-secret")
	tok, err := SignSessionToken("sess-123", time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken error: %v", err)
	}

	t.Setenv("SESSION_SECRET", "wrong-secret")
	if _, err := ParseSessionToken(tok); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestParseSessionToken_Malformed(t *testing.T) {
	t.Setenv("SESSION_SECRET", "k")

	if _, err := ParseSessionToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
