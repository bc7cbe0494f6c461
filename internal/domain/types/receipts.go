package types

import "github.com/shopspring/decimal"

// BalanceStatement is the read-only result of a balance inquiry.
type BalanceStatement struct {
	UserName Username
	Balance  decimal.Decimal
}

// TopUpReceipt reports a completed top-up: the amount credited and the
// resulting balance.
type TopUpReceipt struct {
	Amount  decimal.Decimal
	Balance decimal.Decimal
}

// TransferReceipt reports a completed transfer from the sender's side.
// Recipient carries the recipient's stored casing, not the lookup input.
type TransferReceipt struct {
	Recipient Username
	Amount    decimal.Decimal
	Balance   decimal.Decimal
}
