package interfaces

import domaintypes "ewallet/internal/domain/types"

// LedgerService exposes one operation per wallet command. Every operation
// validates fully before mutating anything, so a failed call leaves both
// stores exactly as it found them.
type LedgerService interface {
	Register(name domaintypes.Username) (domaintypes.User, error)
	Login(name domaintypes.Username) (domaintypes.Session, error)
	Logout() (domaintypes.Username, error)
	Balance() (domaintypes.BalanceStatement, error)
	TopUp(amountText string) (domaintypes.TopUpReceipt, error)
	Transfer(recipient domaintypes.Username, amountText string) (domaintypes.TransferReceipt, error)
}
