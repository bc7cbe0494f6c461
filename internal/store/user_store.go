package store

import (
	"sync"

	"github.com/google/uuid"

	"ewallet/internal/domain"
)

// MemoryUserStore keeps registered users in process memory.
//
// Users are held by id with a secondary folded-name index for
// case-insensitive lookup. Values are copied in and out, so callers never
// alias store state; updates go through SaveUser.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
	names map[domain.Username]uuid.UUID
}

// NewMemoryUserStore returns an empty user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[uuid.UUID]domain.User),
		names: make(map[domain.Username]uuid.UUID),
	}
}

// SaveUser inserts or overwrites the user under its id and (re)indexes the
// folded name.
func (s *MemoryUserStore) SaveUser(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID] = user
	s.names[user.Name.Fold()] = user.ID
	return nil
}

// FindUserByID retrieves a user by id.
func (s *MemoryUserStore) FindUserByID(id uuid.UUID) (domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	return user, ok, nil
}

// FindUserByName retrieves a user by folded name. A miss in either the name
// index or the primary map is an ordinary not-found result.
func (s *MemoryUserStore) FindUserByName(name domain.Username) (domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.names[name.Fold()]
	if !ok {
		return domain.User{}, false, nil
	}
	user, ok := s.users[id]
	return user, ok, nil
}

// Compile-time assertion that MemoryUserStore implements domain.UserStore.
var _ domain.UserStore = (*MemoryUserStore)(nil)
