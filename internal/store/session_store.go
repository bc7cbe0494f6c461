package store

import (
	"sync"

	"ewallet/internal/domain"
)

// MemorySessionStore holds the single active-session slot.
//
// The slot is the system-wide invariant: at most one session exists at a
// time. SaveSession overwrites whatever is there, which is how a login for a
// different user evicts the previous session.
type MemorySessionStore struct {
	mu      sync.Mutex
	session *domain.Session
}

// NewMemorySessionStore returns a session store with an empty slot.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

// SaveSession overwrites the slot unconditionally.
func (s *MemorySessionStore) SaveSession(session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &session
	return nil
}

// FindSessionByUserName returns the current session only if it belongs to the
// named user. A session held by a different user is not a match, so callers
// can tell "this user is logged in" apart from "someone is logged in".
func (s *MemorySessionStore) FindSessionByUserName(name domain.Username) (domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || !s.session.UserName.Equal(name) {
		return domain.Session{}, false, nil
	}
	return *s.session, true, nil
}

// CurrentSession returns whatever occupies the slot.
func (s *MemorySessionStore) CurrentSession() (domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.Session{}, false, nil
	}
	return *s.session, true, nil
}

// ClearSession empties the slot; clearing an empty slot is a no-op.
func (s *MemorySessionStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return nil
}

// Compile-time assertion that MemorySessionStore implements domain.SessionStore.
var _ domain.SessionStore = (*MemorySessionStore)(nil)
