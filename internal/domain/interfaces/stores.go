package interfaces

import (
	"github.com/google/uuid"

	domaintypes "ewallet/internal/domain/types"
)

// UserStore owns the set of registered users, keyed by id with a secondary
// case-insensitive name index. Lookups report absence through the ok result;
// a miss is never an error.
type UserStore interface {
	SaveUser(user domaintypes.User) error
	FindUserByID(id uuid.UUID) (domaintypes.User, bool, error)
	FindUserByName(name domaintypes.Username) (domaintypes.User, bool, error)
}

// SessionStore owns the single active-session slot: at most one session
// exists in the whole system.
type SessionStore interface {
	// SaveSession overwrites the slot unconditionally.
	SaveSession(session domaintypes.Session) error

	// FindSessionByUserName returns the slot's session only when it belongs
	// to the named user; a session held by anyone else is not a match.
	FindSessionByUserName(name domaintypes.Username) (domaintypes.Session, bool, error)

	// CurrentSession returns whatever occupies the slot.
	CurrentSession() (domaintypes.Session, bool, error)

	// ClearSession empties the slot. Clearing an empty slot is a no-op.
	ClearSession() error
}
