package store_test

import (
	"testing"

	"ewallet/internal/domain"
	"ewallet/internal/store"
)

func newSession(t *testing.T, name domain.Username) domain.Session {
	t.Helper()
	return domain.NewSession(domain.NewUser(name))
}

func TestSessionStore_EmptySlot(t *testing.T) {
	var sessions domain.SessionStore = store.NewMemorySessionStore()

	if _, ok, err := sessions.CurrentSession(); err != nil {
		t.Fatalf("current: %v", err)
	} else if ok {
		t.Fatal("expected empty slot")
	}
	if _, ok, err := sessions.FindSessionByUserName("john"); err != nil {
		t.Fatalf("find: %v", err)
	} else if ok {
		t.Fatal("expected no session for john")
	}
}

func TestSessionStore_FindMatchesOwnerOnly(t *testing.T) {
	var sessions domain.SessionStore = store.NewMemorySessionStore()

	session := newSession(t, "John")
	if err := sessions.SaveSession(session); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Owner matches case-insensitively.
	got, ok, err := sessions.FindSessionByUserName("JOHN")
	if err != nil || !ok {
		t.Fatalf("find owner: ok=%v err=%v", ok, err)
	}
	if got.ID != session.ID {
		t.Fatalf("got session %v, want %v", got.ID, session.ID)
	}

	// A different user is not a match even though a session is active.
	if _, ok, err := sessions.FindSessionByUserName("ana"); err != nil {
		t.Fatalf("find other: %v", err)
	} else if ok {
		t.Fatal("expected no session for ana")
	}
}

func TestSessionStore_SaveOverwritesSlot(t *testing.T) {
	var sessions domain.SessionStore = store.NewMemorySessionStore()

	first := newSession(t, "john")
	second := newSession(t, "ana")
	if err := sessions.SaveSession(first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := sessions.SaveSession(second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	if _, ok, _ := sessions.FindSessionByUserName("john"); ok {
		t.Fatal("john's session should have been evicted")
	}
	got, ok, _ := sessions.CurrentSession()
	if !ok || got.ID != second.ID {
		t.Fatalf("slot holds %v, want %v", got.ID, second.ID)
	}
}

func TestSessionStore_ClearIsIdempotent(t *testing.T) {
	var sessions domain.SessionStore = store.NewMemorySessionStore()

	if err := sessions.SaveSession(newSession(t, "john")); err != nil {
		t.Fatalf("save: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := sessions.ClearSession(); err != nil {
			t.Fatalf("clear #%d: %v", i+1, err)
		}
	}
	if _, ok, _ := sessions.CurrentSession(); ok {
		t.Fatal("expected empty slot after clear")
	}
}
