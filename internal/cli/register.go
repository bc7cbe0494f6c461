package cli

import (
	"errors"
	"fmt"

	"ewallet/internal/domain"
)

// cmdRegister handles: register <username>
func (s *Shell) cmdRegister(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Error: Username required")
		fmt.Fprintln(s.out, "Usage: register <username>")
		fmt.Fprintln(s.out, "Example: register john")
		return
	}
	name := domain.Username(args[0])

	user, err := s.ledger.Register(name)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			fmt.Fprintf(s.out, "Error: User '%s' already exists\n", name)
			return
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(s.out, "User '%s' registered successfully!\n", user.Name)
	fmt.Fprintf(s.out, "User ID: %s\n", user.ID)
	fmt.Fprintf(s.out, "Initial wallet balance: %s\n", user.Wallet.Balance)
}
