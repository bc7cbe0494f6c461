package cli

import (
	"errors"
	"fmt"

	"ewallet/internal/domain"
)

// cmdLogin handles: login <username>
func (s *Shell) cmdLogin(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Error: Username required")
		fmt.Fprintln(s.out, "Usage: login <username>")
		fmt.Fprintln(s.out, "Example: login john")
		return
	}
	name := domain.Username(args[0])

	session, err := s.ledger.Login(name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			fmt.Fprintf(s.out, "Error: User '%s' not found\n", name)
			fmt.Fprintln(s.out, "Please register first using: register <username>")
		case errors.Is(err, domain.ErrAlreadyLoggedIn):
			fmt.Fprintf(s.out, "User '%s' is already logged in\n", name)
		default:
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		return
	}

	fmt.Fprintf(s.out, "User '%s' logged in successfully!\n", name)
	fmt.Fprintf(s.out, "Session ID: %s\n", session.ID)
}
