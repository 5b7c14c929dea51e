package service

import (
	"errors"
	"testing"
	"time"

	"github.com/a6w/mapmo/internal/errs"
)

func TestSessionService_RoundTrip(t *testing.T) {
	svc := NewSessionService([]byte("test-key"), time.Hour)

	token, exp, err := svc.IssueToken("u1")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if time.Until(exp) < 55*time.Minute {
		t.Fatalf("expiry too soon: %v", exp)
	}

	ownerID, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if ownerID != "u1" {
		t.Fatalf("ownerID = %q", ownerID)
	}
}

func TestSessionService_EmptyOwner(t *testing.T) {
	svc := NewSessionService([]byte("test-key"), time.Hour)
	if _, _, err := svc.IssueToken(""); err == nil {
		t.Fatal("want error for empty ownerID")
	}
}

func TestSessionService_RejectsBadTokens(t *testing.T) {
	svc := NewSessionService([]byte("test-key"), time.Hour)

	if _, err := svc.ParseToken("not-a-token"); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}

	// Signed with a different key.
	other := NewSessionService([]byte("other-key"), time.Hour)
	token, _, err := other.IssueToken("u1")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, err := svc.ParseToken(token); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestSessionService_RejectsExpired(t *testing.T) {
	svc := NewSessionService([]byte("test-key"), -time.Minute)

	token, _, err := svc.IssueToken("u1")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, err := svc.ParseToken(token); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}
