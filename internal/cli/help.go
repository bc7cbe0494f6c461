package cli

import (
	"fmt"
	"sort"
)

// cmdHelp lists all registered commands alphabetically with descriptions.
func (s *Shell) cmdHelp(args []string) {
	names := make([]string, 0, len(s.cmds))
	for name := range s.cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(s.out, "\nAvailable commands:")
	for _, name := range names {
		fmt.Fprintf(s.out, "  %-10s - %s\n", name, s.cmds[name].description)
	}
	fmt.Fprintln(s.out)
}
