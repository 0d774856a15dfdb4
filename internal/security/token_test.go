package security

import (
	"testing"
	"time"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(42, "matcha_fan", "member", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ValidateJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}
	if claims.UserID != 42 || claims.Username != "matcha_fan" || claims.Role != "member" {
		t.Errorf("claims = {%d, %s, %s}, want {42, matcha_fan, member}",
			claims.UserID, claims.Username, claims.Role)
	}
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, "alice", "member", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ValidateJWT(token, "a-completely-different-secret"); err == nil {
		t.Error("ValidateJWT() with wrong secret expected error, got nil")
	}
}

func TestValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(1, "alice", "member", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ValidateJWT(token, testSecret); err == nil {
		t.Error("ValidateJWT() with expired token expected error, got nil")
	}
}

func TestValidateJWT_Garbage(t *testing.T) {
	if _, err := ValidateJWT("not.a.token", testSecret); err == nil {
		t.Error("ValidateJWT() with garbage input expected error, got nil")
	}
}
