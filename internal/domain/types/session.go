package types

import (
	"time"

	"github.com/google/uuid"
)

// Session ties a generated id to the user holding it. A session is immutable
// once created; the registry replaces or drops whole sessions, never edits
// them. The user is referenced by id and resolved through the user store.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	UserName  Username
	CreatedAt time.Time
}

// NewSession creates a session for the given user.
func NewSession(user User) Session {
	return Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		UserName:  user.Name,
		CreatedAt: time.Now(),
	}
}
