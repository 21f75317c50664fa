package auth

import (
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	principal := &Principal{SubjectID: "user-42", Email: "u@example.com"}

	ctx := ContextWithPrincipal(context.Background(), principal)
	got, ok := PrincipalFromContext(ctx)
	if !ok {
		t.Fatal("expected principal in context")
	}
	if got.SubjectID != "user-42" {
		t.Fatalf("unexpected subject: %s", got.SubjectID)
	}
}

func TestContextWithoutPrincipal(t *testing.T) {
	if _, ok := PrincipalFromContext(context.Background()); ok {
		t.Fatal("empty context should carry no principal")
	}
	ctx := ContextWithPrincipal(context.Background(), nil)
	if _, ok := PrincipalFromContext(ctx); ok {
		t.Fatal("nil principal should not be stored")
	}
}

func TestStubLookup(t *testing.T) {
	var lookup StubIdentityLookup

	principal, err := lookup.Resolve(context.Background(), "anyone")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if principal.SubjectID != "anyone" {
		t.Fatalf("unexpected subject: %s", principal.SubjectID)
	}

	if _, err := lookup.Resolve(context.Background(), ""); err != ErrPrincipalNotFound {
		t.Fatalf("expected ErrPrincipalNotFound, got %v", err)
	}
}
