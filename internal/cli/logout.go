package cli

import (
	"errors"
	"fmt"

	"ewallet/internal/domain"
)

// cmdLogout handles: logout
func (s *Shell) cmdLogout(args []string) {
	name, err := s.ledger.Logout()
	if err != nil {
		if errors.Is(err, domain.ErrNotLoggedIn) {
			fmt.Fprintln(s.out, "Error: No user is currently logged in")
			return
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "User '%s' logged out successfully\n", name)
}
