// Package commands defines the ewallet CLI entrypoint.
//
// Commands (inside the shell)
//
//   - register   Register a new user
//   - login      Log in as a registered user
//   - logout     Log out the current user
//   - balance    Show your wallet balance
//   - topup      Add money to your wallet
//   - transfer   Send money to another user
//   - help       Show the command list
//   - exit       Quit the program
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph
// (stores, ledger service, shell) before handing control to the interactive
// loop. Wallet state is in-memory, so the shell is the whole surface: a
// session could never survive between one-shot process invocations.
package commands
