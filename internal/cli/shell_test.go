package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"ewallet/internal/cli"
	"ewallet/internal/services/ledger"
	"ewallet/internal/store"
)

// runScript feeds the lines to a fresh shell and returns everything written.
func runScript(t *testing.T, lines ...string) string {
	t.Helper()

	svc := ledger.New(store.NewMemoryUserStore(), store.NewMemorySessionStore())
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	shell := cli.New(svc, in, &out, cli.Options{Prompt: "> ", Currency: "Rp"})
	if err := shell.Run(); err != nil {
		t.Fatalf("shell run: %v", err)
	}
	return out.String()
}

func wantContains(t *testing.T, output string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q:\n%s", want, output)
		}
	}
}

func TestShell_WelcomeAndExit(t *testing.T) {
	output := runScript(t, "exit")
	wantContains(t, output,
		"Welcome to the E-Wallet CLI!",
		"Type 'help' for available commands.",
		"Goodbye!",
	)
}

func TestShell_HelloAndHelp(t *testing.T) {
	output := runScript(t, "hello", "help", "exit")
	wantContains(t, output,
		"hello",
		"Available commands:",
		"register",
		"transfer",
		"Quit the program",
	)
}

func TestShell_UnknownCommandShowsHelp(t *testing.T) {
	output := runScript(t, "frobnicate", "exit")
	wantContains(t, output,
		"Unknown command: frobnicate",
		"Available commands:",
	)
}

func TestShell_RegisterLoginBalance(t *testing.T) {
	output := runScript(t,
		"register john",
		"login john",
		"balance",
		"exit",
	)
	wantContains(t, output,
		"User 'john' registered successfully!",
		"User ID: ",
		"Initial wallet balance: 0",
		"User 'john' logged in successfully!",
		"Session ID: ",
		"Current balance for user 'john': Rp0.00",
	)
}

func TestShell_CommandWordIsCaseInsensitive(t *testing.T) {
	output := runScript(t, "REGISTER john", "LoGiN john", "exit")
	wantContains(t, output,
		"User 'john' registered successfully!",
		"User 'john' logged in successfully!",
	)
}

func TestShell_TopUpAndTransferFlow(t *testing.T) {
	output := runScript(t,
		"register john",
		"register ana",
		"login john",
		"topup 50000",
		"transfer ana 20000",
		"transfer ana 999999",
		"exit",
	)
	wantContains(t, output,
		"Successfully topped up Rp50000.00",
		"Current balance: Rp50000.00",
		"Successfully transferred Rp20000.00 to ana",
		"Your new balance: Rp30000.00",
		"Error: Insufficient balance",
		"Your current balance: Rp30000.00",
		"Required amount: Rp999999.00",
	)
}

func TestShell_ArgumentErrors(t *testing.T) {
	output := runScript(t,
		"register",
		"login",
		"register john",
		"login john",
		"topup",
		"topup abc",
		"topup -5",
		"transfer",
		"transfer john 100",
		"transfer ghost 100",
		"exit",
	)
	wantContains(t, output,
		"Error: Username required",
		"Usage: register <username>",
		"Usage: login <username>",
		"Error: Amount required",
		"Usage: topup <amount>",
		"Error: Invalid amount format",
		"Amount must be a number",
		"Error: Amount must be positive",
		"Error: Both recipient username and amount are required",
		"Usage: transfer <username> <amount>",
		"Error: Cannot transfer money to yourself",
		"Error: User 'ghost' not found",
		"Please check the username and try again",
	)
}

func TestShell_LoggedOutErrors(t *testing.T) {
	output := runScript(t,
		"balance",
		"topup 100",
		"transfer ana 100",
		"logout",
		"exit",
	)
	wantContains(t, output,
		"Error: You must be logged in to check your balance",
		"Error: You must be logged in to top up your wallet",
		"Error: You must be logged in to transfer money",
		"Please login first using: login <username>",
		"Error: No user is currently logged in",
	)
}

func TestShell_LoginSwitchAndLogout(t *testing.T) {
	output := runScript(t,
		"register john",
		"register ana",
		"login john",
		"login john",
		"login ana",
		"logout",
		"exit",
	)
	wantContains(t, output,
		"User 'john' is already logged in",
		"User 'ana' logged in successfully!",
		"User 'ana' logged out successfully",
	)
}

func TestShell_EOFSaysGoodbye(t *testing.T) {
	svc := ledger.New(store.NewMemoryUserStore(), store.NewMemorySessionStore())
	var out bytes.Buffer

	shell := cli.New(svc, strings.NewReader(""), &out, cli.Options{Prompt: "> "})
	if err := shell.Run(); err != nil {
		t.Fatalf("shell run: %v", err)
	}
	wantContains(t, out.String(), "Goodbye!")
}
