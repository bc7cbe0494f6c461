package cli

import (
	"errors"
	"fmt"

	"ewallet/internal/domain"
)

// cmdTopUp handles: topup <amount>
//
// The session check belongs to the ledger and runs before the argument
// check, so a logged-out call reports the login requirement even when the
// amount is also missing.
func (s *Shell) cmdTopUp(args []string) {
	var amountText string
	if len(args) > 0 {
		amountText = args[0]
	}

	receipt, err := s.ledger.TopUp(amountText)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotLoggedIn):
			fmt.Fprintln(s.out, "Error: You must be logged in to top up your wallet")
			fmt.Fprintln(s.out, "Please login first using: login <username>")
		case errors.Is(err, domain.ErrMissingArgument):
			fmt.Fprintln(s.out, "Error: Amount required")
			fmt.Fprintln(s.out, "Usage: topup <amount>")
			fmt.Fprintln(s.out, "Example: topup 50000")
		case errors.Is(err, domain.ErrInvalidAmount):
			fmt.Fprintln(s.out, "Error: Invalid amount format")
			fmt.Fprintln(s.out, "Amount must be a number")
		case errors.Is(err, domain.ErrNonPositiveAmount):
			fmt.Fprintln(s.out, "Error: Amount must be positive")
		default:
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		return
	}

	fmt.Fprintf(s.out, "Successfully topped up %s\n", s.money(receipt.Amount))
	fmt.Fprintf(s.out, "Current balance: %s\n", s.money(receipt.Balance))
}
