package cli

import (
	"errors"
	"fmt"

	"ewallet/internal/domain"
)

// cmdBalance handles: balance
func (s *Shell) cmdBalance(args []string) {
	statement, err := s.ledger.Balance()
	if err != nil {
		if errors.Is(err, domain.ErrNotLoggedIn) {
			fmt.Fprintln(s.out, "Error: You must be logged in to check your balance")
			fmt.Fprintln(s.out, "Please login first using: login <username>")
			return
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Current balance for user '%s': %s\n",
		statement.UserName, s.money(statement.Balance))
}
