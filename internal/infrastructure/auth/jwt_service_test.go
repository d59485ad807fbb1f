package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/you/tradeops/domain"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "tradeops", time.Hour)

	token, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Errorf("subject = %q, want %q", claims.Subject, "alice@example.com")
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Errorf("exp %d should be after iat %d", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", "tradeops", -time.Minute)

	token, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("Verify error = %v, want ErrTokenExpired", err)
	}
}

func TestJWTService_BadSignature(t *testing.T) {
	issuer := NewJWTService("secret-a", "tradeops", time.Hour)
	verifier := NewJWTService("secret-b", "tradeops", time.Hour)

	token, err := issuer.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, domain.ErrTokenSignature) {
		t.Errorf("Verify error = %v, want ErrTokenSignature", err)
	}
}

func TestJWTService_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret", "tradeops", time.Hour)

	for _, bad := range []string{"", "not-a-token", "a.b", "x.y.z"} {
		_, err := svc.Verify(bad)
		if !errors.Is(err, domain.ErrTokenMalformed) {
			t.Errorf("Verify(%q) error = %v, want ErrTokenMalformed", bad, err)
		}
	}
}

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "pw1" {
		t.Fatal("hash must not equal the raw password")
	}
	if !svc.Verify(hash, "pw1") {
		t.Error("correct password should verify")
	}
	if svc.Verify(hash, "pw2") {
		t.Error("wrong password should not verify")
	}
}
