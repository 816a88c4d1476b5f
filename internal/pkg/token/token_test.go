package token

import (
	"testing"
	"time"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	c, err := NewCodec("super-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}

	want := Identity{UserID: "user-123", Username: "admin", Role: "admin"}
	raw, err := c.Issue(want)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := c.Verify(raw)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != want {
		t.Fatalf("identity mismatch: got %+v want %+v", got, want)
	}

	// Verification is deterministic: a second pass yields the same identity.
	again, err := c.Verify(raw)
	if err != nil {
		t.Fatalf("second Verify error: %v", err)
	}
	if again != got {
		t.Fatalf("verify not deterministic: %+v vs %+v", again, got)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	c := mustCodec(t, "secret", -1*time.Second)
	raw, err := c.Issue(Identity{UserID: "u1", Username: "admin", Role: "admin"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = c.Verify(raw)
	if err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	signer := mustCodec(t, "right-secret", time.Hour)
	raw, err := signer.Issue(Identity{UserID: "u2", Username: "admin", Role: "admin"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	verifier := mustCodec(t, "wrong-secret", time.Hour)
	if _, err := verifier.Verify(raw); err == nil {
		t.Fatalf("expected error for wrong secret, got nil")
	}
}

func TestVerify_MalformedAndMissing(t *testing.T) {
	t.Parallel()

	c := mustCodec(t, "k", time.Hour)

	if _, err := c.Verify("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
	if _, err := c.Verify(""); err != ErrMissing {
		t.Fatalf("expected ErrMissing for empty token, got %v", err)
	}
}

func TestVerify_IncompleteClaims(t *testing.T) {
	t.Parallel()

	c := mustCodec(t, "k", time.Hour)
	raw, err := c.Issue(Identity{UserID: "u3"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := c.Verify(raw); err != ErrBadClaims {
		t.Fatalf("expected ErrBadClaims, got %v", err)
	}
}

func TestNewCodec_EmptySecret(t *testing.T) {
	t.Parallel()

	if _, err := NewCodec("  ", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret, got nil")
	}
}

func mustCodec(t *testing.T, secret string, ttl time.Duration) *Codec {
	t.Helper()
	c, err := NewCodec(secret, ttl)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}
	return c
}
