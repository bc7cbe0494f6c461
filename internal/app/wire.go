package app

import (
	"ewallet/internal/cli"
	"ewallet/internal/domain"
	ledgersvc "ewallet/internal/services/ledger"
	"ewallet/internal/store"
)

// Wire bundles the stores, the ledger service, and the shell for the CLI.
type Wire struct {
	Users    domain.UserStore
	Sessions domain.SessionStore
	Ledger   domain.LedgerService
	Shell    *cli.Shell
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	// In-memory stores; state lives for the process lifetime only.
	userStore := store.NewMemoryUserStore()
	sessionStore := store.NewMemorySessionStore()

	// Use-case layer over the stores.
	ledger := ledgersvc.New(userStore, sessionStore)

	// Interactive surface.
	shell := cli.New(ledger, cfg.In, cfg.Out, cli.Options{
		Prompt:   cfg.Prompt,
		Currency: cfg.Currency,
	})

	return &Wire{
		Users:    userStore,
		Sessions: sessionStore,
		Ledger:   ledger,
		Shell:    shell,
	}
}
