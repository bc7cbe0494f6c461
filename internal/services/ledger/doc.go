// Package ledger implements the wallet use cases: register, login, logout,
// balance, top-up and transfer.
//
// It composes the user store and the session registry under transactional
// rules: all validation precedes any mutation, and a transfer's debit and
// credit are applied as one unit.
package ledger
