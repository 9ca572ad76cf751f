package auth

import (
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-1", "a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, email, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-1" || email != "a@example.com" {
		t.Fatalf("wrong claims: %s %s", userID, email)
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := GenerateToken("", "a@example.com"); err == nil {
		t.Fatal("expected error for empty userID")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-1", "a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")

	if _, _, err := ValidateToken(token); err == nil {
		t.Fatal("expected validation failure with a different secret")
	}
}
