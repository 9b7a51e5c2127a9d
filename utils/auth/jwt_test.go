package auth

import (
	"testing"
	"time"
)

func newTestManager() *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret: "test-secret-at-least-32-characters!",
		Expiry: time.Hour,
		Issuer: "school-cms-test",
	})
}

func TestGenerateAndValidateSessionToken(t *testing.T) {
	manager := newTestManager()

	token, jti, err := manager.GenerateSessionToken(7, "admin", "School Admin", 3)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}
	if token == "" || jti == "" {
		t.Fatal("Expected non-empty token and JTI")
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.AdminID != 7 {
		t.Errorf("Expected admin ID 7, got %d", claims.AdminID)
	}
	if claims.Username != "admin" {
		t.Errorf("Expected username admin, got %s", claims.Username)
	}
	if claims.TokenVersion != 3 {
		t.Errorf("Expected token version 3, got %d", claims.TokenVersion)
	}
	if claims.ID != jti {
		t.Errorf("Expected claims JTI %s, got %s", jti, claims.ID)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	manager := newTestManager()
	token, _, err := manager.GenerateSessionToken(1, "admin", "Admin", 0)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	other := NewJWTManager(JWTConfig{
		Secret: "a-completely-different-signing-secret",
		Expiry: time.Hour,
		Issuer: "school-cms-test",
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("Expected validation to fail with a different secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	manager := newTestManager()
	if _, err := manager.ValidateToken("not.a.token"); err == nil {
		t.Error("Expected validation to fail for malformed token")
	}
}

func TestGetTokenExpiry(t *testing.T) {
	manager := newTestManager()
	token, _, err := manager.GenerateSessionToken(1, "admin", "Admin", 0)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	expiry, err := manager.GetTokenExpiry(token)
	if err != nil {
		t.Fatalf("GetTokenExpiry failed: %v", err)
	}

	until := time.Until(expiry)
	if until <= 0 || until > time.Hour {
		t.Errorf("Expected expiry within the next hour, got %v", until)
	}
}
