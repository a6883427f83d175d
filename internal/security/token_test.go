package security

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, 7, "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "admin" {
		t.Errorf("claims = %+v, want user 7/admin", claims)
	}
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, 7, "admin", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(token, testSecret); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestTokenTampered(t *testing.T) {
	token, err := GenerateToken(testSecret, 7, "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	forged, _ := json.Marshal(map[string]any{
		"user_id":  999,
		"username": "intruder",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	parts[1] = base64.RawURLEncoding.EncodeToString(forged)

	if _, err := ParseToken(strings.Join(parts, "."), testSecret); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, 7, "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(token, "other-secret"); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestLegacyTokenExpiryOnly(t *testing.T) {
	valid := GenerateLegacyToken(3, "admin", time.Hour)
	claims, err := ParseLegacyToken(valid)
	if err != nil {
		t.Fatalf("ParseLegacyToken: %v", err)
	}
	if claims.UserID != 3 || claims.Username != "admin" {
		t.Errorf("claims = %+v, want user 3/admin", claims)
	}

	expired := GenerateLegacyToken(3, "admin", -time.Minute)
	if _, err := ParseLegacyToken(expired); err == nil {
		t.Error("expected expired legacy token to be rejected")
	}

	// No signature: a token minted by anyone with any claims passes as long
	// as the embedded expiry is in the future.
	forged, _ := json.Marshal(map[string]any{
		"user_id":  42,
		"username": "forged",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	claims, err = ParseLegacyToken(base64.StdEncoding.EncodeToString(forged))
	if err != nil {
		t.Fatalf("forged legacy token rejected: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
}

func TestVerifyTokenLegacyGate(t *testing.T) {
	legacy := GenerateLegacyToken(3, "admin", time.Hour)

	if _, err := VerifyToken(legacy, testSecret, false); err == nil {
		t.Error("legacy token accepted with compat disabled")
	}
	if _, err := VerifyToken(legacy, testSecret, true); err != nil {
		t.Errorf("legacy token rejected with compat enabled: %v", err)
	}

	signed, err := GenerateToken(testSecret, 7, "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := VerifyToken(signed, testSecret, false); err != nil {
		t.Errorf("signed token rejected: %v", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword("hunter22", hash) {
		t.Error("correct password rejected")
	}
	if VerifyPassword("hunter23", hash) {
		t.Error("wrong password accepted")
	}
}
