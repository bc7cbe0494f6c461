package types

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Username is the display name chosen at registration. Uniqueness and lookup
// always compare folded forms; the stored value keeps its original casing.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// Fold returns the case-folded form used for uniqueness and lookup.
func (u Username) Fold() Username { return Username(strings.ToLower(string(u))) }

// Equal reports whether two usernames match case-insensitively.
func (u Username) Equal(other Username) bool { return u.Fold() == other.Fold() }

// Wallet holds a single monetary balance as an exact decimal. The balance is
// never negative after a completed operation.
type Wallet struct {
	Balance decimal.Decimal
}

// User is a registered account: a generated immutable id, a display name and
// an owned wallet. Users are never deleted; only the wallet balance changes.
type User struct {
	ID     uuid.UUID
	Name   Username
	Wallet Wallet
}

// NewUser creates a user with a fresh id and a zero-balance wallet.
func NewUser(name Username) User {
	return User{ID: uuid.New(), Name: name, Wallet: Wallet{Balance: decimal.Zero}}
}
