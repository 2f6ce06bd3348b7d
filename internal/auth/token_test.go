package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	m, err := NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	token, err := m.Issue("user-123")
	if err != nil {
		t.Fatal(err)
	}
	uid, err := m.Verify(token)
	if err != nil {
		t.Fatal(err)
	}
	if uid != "user-123" {
		t.Fatalf("got uid=%q want %q", uid, "user-123")
	}
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, err := NewTokenManager("   ", time.Hour); err == nil {
		t.Fatal("expected error for blank secret")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m1, _ := NewTokenManager("secret-one", time.Hour)
	m2, _ := NewTokenManager("secret-two", time.Hour)

	token, err := m1.Issue("user-123")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m2.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m, _ := NewTokenManager("test-secret", time.Hour)
	for _, token := range []string{"", "   ", "not.a.jwt", "eyJhbGciOiJub25lIn0.e30."} {
		if _, err := m.Verify(token); err != ErrInvalidToken {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m, _ := NewTokenManager("test-secret", time.Nanosecond)
	token, err := m.Issue("user-123")
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := m.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestIssueRequiresUserID(t *testing.T) {
	m, _ := NewTokenManager("test-secret", time.Hour)
	if _, err := m.Issue(""); err == nil {
		t.Fatal("expected error for empty user id")
	}
}
