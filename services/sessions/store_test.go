package sessions_test

import (
	"testing"
	"time"

	"wayfare/services/sessions"
)

func TestCreateAndResolve(t *testing.T) {
	store := sessions.NewStore(time.Hour)

	token, err := store.Create("alice")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	username, ok := store.Resolve(token)
	if !ok {
		t.Fatalf("expected token to resolve")
	}
	if username != "alice" {
		t.Fatalf("expected alice, got %q", username)
	}
}

func TestTokensAreUnique(t *testing.T) {
	store := sessions.NewStore(time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create("alice")
		if err != nil {
			t.Fatalf("create returned error: %v", err)
		}
		if seen[token] {
			t.Fatalf("token collision after %d tokens", i)
		}
		seen[token] = true
	}
}

func TestResolveUnknownToken(t *testing.T) {
	store := sessions.NewStore(time.Hour)

	if _, ok := store.Resolve("no-such-token"); ok {
		t.Fatalf("expected unknown token to fail resolution")
	}
}

func TestInvalidate(t *testing.T) {
	store := sessions.NewStore(time.Hour)

	token, err := store.Create("alice")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	store.Invalidate(token)
	if _, ok := store.Resolve(token); ok {
		t.Fatalf("expected invalidated token to fail resolution")
	}

	// Invalidating again is a no-op
	store.Invalidate(token)
}

func TestExpiry(t *testing.T) {
	store := sessions.NewStore(10 * time.Millisecond)

	token, err := store.Create("alice")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, ok := store.Resolve(token); ok {
		t.Fatalf("expected expired token to fail resolution")
	}
}
