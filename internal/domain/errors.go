package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Domain errors returned by ledger operations. All are recovered at the
// operation boundary; none terminates the process.
var (
	// ErrMissingArgument is returned when a required argument is absent.
	ErrMissingArgument = errors.New("required argument missing")

	// ErrMissingArguments is the transfer variant of ErrMissingArgument,
	// where both the recipient and the amount are required.
	ErrMissingArguments = errors.New("required arguments missing")

	// ErrInvalidAmount is returned when an amount does not parse as a decimal.
	ErrInvalidAmount = errors.New("amount is not a valid number")

	// ErrNonPositiveAmount is returned when an amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned on a registration name collision.
	ErrUserExists = errors.New("user already exists")

	// ErrNotLoggedIn is returned when an operation needs an active session
	// and none exists.
	ErrNotLoggedIn = errors.New("no user is logged in")

	// ErrAlreadyLoggedIn is returned when the login target already holds the
	// active session.
	ErrAlreadyLoggedIn = errors.New("user is already logged in")

	// ErrSelfTransfer is returned when the transfer target is the sender.
	ErrSelfTransfer = errors.New("cannot transfer to yourself")
)

// InsufficientBalanceError reports a transfer that would overdraw the sender.
// It carries the held and required amounts for the failure message.
type InsufficientBalanceError struct {
	Balance  decimal.Decimal
	Required decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %s, need %s", e.Balance, e.Required)
}
