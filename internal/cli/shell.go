package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"ewallet/internal/domain"
)

// Options configures shell presentation.
type Options struct {
	Prompt   string // printed before each read, e.g. "> "
	Currency string // prefix for rendered amounts, e.g. "Rp"
}

// command pairs a handler with the description shown by help.
type command struct {
	handler     func(args []string)
	description string
}

// Shell is the interactive read-dispatch-print loop. It owns no wallet
// state: every command resolves to a ledger operation and renders the
// returned payload or error.
type Shell struct {
	ledger  domain.LedgerService
	in      *bufio.Scanner
	out     io.Writer
	opts    Options
	cmds    map[string]command
	running bool
}

// New returns a shell reading commands from in and writing to out.
func New(ledger domain.LedgerService, in io.Reader, out io.Writer, opts Options) *Shell {
	s := &Shell{
		ledger: ledger,
		in:     bufio.NewScanner(in),
		out:    out,
		opts:   opts,
		cmds:   make(map[string]command),
	}
	s.register("hello", s.cmdHello, "Get a hello response")
	s.register("help", s.cmdHelp, "Show this help message")
	s.register("exit", s.cmdExit, "Quit the program")
	s.register("register", s.cmdRegister, "Register a new user")
	s.register("login", s.cmdLogin, "Log in as a registered user")
	s.register("logout", s.cmdLogout, "Log out the current user")
	s.register("balance", s.cmdBalance, "Show your wallet balance")
	s.register("topup", s.cmdTopUp, "Add money to your wallet")
	s.register("transfer", s.cmdTransfer, "Send money to another user")
	return s
}

func (s *Shell) register(name string, handler func([]string), description string) {
	s.cmds[strings.ToLower(name)] = command{handler: handler, description: description}
}

// Run reads and dispatches commands until exit or end of input.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Welcome to the E-Wallet CLI!")
	fmt.Fprintln(s.out, "Type 'help' for available commands.")

	s.running = true
	for s.running {
		fmt.Fprintf(s.out, "\n%s", s.opts.Prompt)
		if !s.in.Scan() {
			fmt.Fprintln(s.out, "\nGoodbye!")
			return s.in.Err()
		}
		s.Handle(s.in.Text())
	}
	return nil
}

// Handle dispatches a single input line. Command words match
// case-insensitively; anything after the first word is passed through as
// arguments.
func (s *Shell) Handle(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])
	cmd, ok := s.cmds[name]
	if !ok {
		fmt.Fprintf(s.out, "Unknown command: %s\n", name)
		s.cmdHelp(nil)
		return
	}
	cmd.handler(fields[1:])
}

func (s *Shell) cmdHello(args []string) {
	fmt.Fprintln(s.out, "hello")
}

func (s *Shell) cmdExit(args []string) {
	s.running = false
	fmt.Fprintln(s.out, "Goodbye!")
}

// money renders an amount with the currency prefix and two fraction digits.
func (s *Shell) money(amount decimal.Decimal) string {
	return s.opts.Currency + amount.StringFixed(2)
}
