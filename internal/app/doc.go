// Package app wires application dependencies for the CLI.
//
// It builds the concrete stores, the ledger service and the interactive
// shell from Config, exposing them via the Wire struct for commands to use.
package app
