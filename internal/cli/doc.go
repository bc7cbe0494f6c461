// Package cli implements the interactive shell for the wallet.
//
// The shell owns a command table (name, handler, description) and a
// read-dispatch-print loop. Handlers are thin: each maps its arguments onto
// one ledger operation and renders the returned payload or typed error. No
// wallet state lives here.
package cli
