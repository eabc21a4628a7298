package utils

import (
	"LabSite/config"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken(7, "admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.AdminID != 7 {
		t.Fatalf("expect admin id 7, got %d", claims.AdminID)
	}
	if claims.Username != "admin" {
		t.Fatalf("expect username admin, got %s", claims.Username)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := GenerateToken(1, "admin")
	if err != nil {
		t.Fatal(err)
	}

	config.AppConfig.JWTSecret = "other-secret"
	if _, err := VerifyToken(token); err == nil {
		t.Fatal("token signed with a different secret must be rejected")
	}
}

func TestTokenGarbageRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	if _, err := VerifyToken("not.a.token"); err == nil {
		t.Fatal("garbage token must be rejected")
	}
}
