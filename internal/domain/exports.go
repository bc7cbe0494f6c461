package domain

import (
	interfaces "ewallet/internal/domain/interfaces"
	types "ewallet/internal/domain/types"
)

// Type aliases expose domain types from the subpackages for compact imports.
type (
	Username         = types.Username
	Wallet           = types.Wallet
	User             = types.User
	Session          = types.Session
	BalanceStatement = types.BalanceStatement
	TopUpReceipt     = types.TopUpReceipt
	TransferReceipt  = types.TransferReceipt

	UserStore     = interfaces.UserStore
	SessionStore  = interfaces.SessionStore
	LedgerService = interfaces.LedgerService
)

// Constructors re-exported for the same reason.
var (
	NewUser    = types.NewUser
	NewSession = types.NewSession
)
