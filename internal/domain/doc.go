// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (entities/results), store and service contracts, and
// the domain error taxonomy only.
package domain
