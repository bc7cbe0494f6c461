// Package store provides in-memory implementations of the domain storage
// interfaces.
//
// All methods are concurrency-safe via internal locking, and every lookup
// returns a value copy rather than a pointer into store state. Nothing is
// persisted: state lives for the process lifetime only.
//
// The package includes stores for:
//   - Registered users (MemoryUserStore)
//   - The single active-session slot (MemorySessionStore)
package store
