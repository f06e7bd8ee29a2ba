package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	payload := map[string]any{
		"email": "hr@acme.com",
		"name":  "Acme HR",
	}
	tok, err := svc.Issue(payload)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.Email != "hr@acme.com" {
		t.Fatalf("unexpected email: %q", id.Email)
	}
	if id.Payload["name"] != "Acme HR" {
		t.Fatalf("payload not carried through: %v", id.Payload)
	}
	if _, ok := id.Payload["exp"]; ok {
		t.Fatalf("registered claims should not leak into the payload")
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	tok, err := svc.Issue(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	if _, err := svc.Verify(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewHMACService("secret-a", time.Hour)
	verifier := NewHMACService("secret-b", time.Hour)

	tok, err := issuer.Issue(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	issuedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	svc := NewHMACService("test-secret", time.Hour)
	svc.now = fixedClock(issuedAt)

	tok, err := svc.Issue(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.now = fixedClock(issuedAt.Add(61 * time.Minute))
	if _, err := svc.Verify(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}

	svc.now = fixedClock(issuedAt.Add(59 * time.Minute))
	if _, err := svc.Verify(tok); err != nil {
		t.Fatalf("token should still be valid before expiry: %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_NoEmailMember(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	tok, err := svc.Issue(map[string]any{"username": "anonymous"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	id, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.Email != "" {
		t.Fatalf("expected empty email, got %q", id.Email)
	}
}
