package cli

import (
	"errors"
	"fmt"

	"ewallet/internal/domain"
)

// cmdTransfer handles: transfer <username> <amount>
func (s *Shell) cmdTransfer(args []string) {
	var recipient domain.Username
	var amountText string
	if len(args) > 0 {
		recipient = domain.Username(args[0])
	}
	if len(args) > 1 {
		amountText = args[1]
	}

	receipt, err := s.ledger.Transfer(recipient, amountText)
	if err != nil {
		var insufficient *domain.InsufficientBalanceError
		switch {
		case errors.Is(err, domain.ErrNotLoggedIn):
			fmt.Fprintln(s.out, "Error: You must be logged in to transfer money")
			fmt.Fprintln(s.out, "Please login first using: login <username>")
		case errors.Is(err, domain.ErrMissingArguments):
			fmt.Fprintln(s.out, "Error: Both recipient username and amount are required")
			fmt.Fprintln(s.out, "Usage: transfer <username> <amount>")
			fmt.Fprintln(s.out, "Example: transfer john 50000")
		case errors.Is(err, domain.ErrSelfTransfer):
			fmt.Fprintln(s.out, "Error: Cannot transfer money to yourself")
		case errors.Is(err, domain.ErrUserNotFound):
			fmt.Fprintf(s.out, "Error: User '%s' not found\n", recipient)
			fmt.Fprintln(s.out, "Please check the username and try again")
		case errors.Is(err, domain.ErrInvalidAmount):
			fmt.Fprintln(s.out, "Error: Invalid amount format")
			fmt.Fprintln(s.out, "Amount must be a number")
		case errors.Is(err, domain.ErrNonPositiveAmount):
			fmt.Fprintln(s.out, "Error: Amount must be positive")
		case errors.As(err, &insufficient):
			fmt.Fprintln(s.out, "Error: Insufficient balance")
			fmt.Fprintf(s.out, "Your current balance: %s\n", s.money(insufficient.Balance))
			fmt.Fprintf(s.out, "Required amount: %s\n", s.money(insufficient.Required))
		default:
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		return
	}

	fmt.Fprintf(s.out, "Successfully transferred %s to %s\n",
		s.money(receipt.Amount), receipt.Recipient)
	fmt.Fprintf(s.out, "Your new balance: %s\n", s.money(receipt.Balance))
}
