package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret-key-that-is-long-enough!"

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "uvtrack", time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	gotID, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if gotID != userID {
		t.Errorf("user id = %v, want %v", gotID, userID)
	}
}

func TestJWTManager_Validate_Errors(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "uvtrack", time.Hour)
	userID := uuid.New()

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()
		if _, err := m.ValidateAccessToken(""); err == nil {
			t.Error("expected error for empty token")
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()
		if _, err := m.ValidateAccessToken("not.a.jwt"); err == nil {
			t.Error("expected error for malformed token")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		other := NewJWTManager("another-secret-key-also-long-enough!", "uvtrack", time.Hour)
		token, err := other.GenerateAccessToken(userID)
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		if _, err := m.ValidateAccessToken(token); err == nil {
			t.Error("expected error for token signed with another secret")
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		t.Parallel()
		other := NewJWTManager(testSecret, "someone-else", time.Hour)
		token, err := other.GenerateAccessToken(userID)
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		_, err = m.ValidateAccessToken(token)
		if err == nil || !strings.Contains(err.Error(), "issuer") {
			t.Errorf("err = %v, want issuer mismatch", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		short := NewJWTManager(testSecret, "uvtrack", -time.Minute)
		token, err := short.GenerateAccessToken(userID)
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		if _, err := m.ValidateAccessToken(token); err == nil {
			t.Error("expected error for expired token")
		}
	})
}

func TestPasswordHasher(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals plaintext")
	}

	if !h.Compare(hash, "correct horse battery staple") {
		t.Error("Compare rejected the right password")
	}
	if h.Compare(hash, "wrong password") {
		t.Error("Compare accepted the wrong password")
	}
	if h.Compare("not-a-bcrypt-hash", "anything") {
		t.Error("Compare accepted a malformed hash")
	}
}
