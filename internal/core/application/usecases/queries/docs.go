// Package queries contains read-only operations of the CQRS architecture.
// Query handlers read through the repository ports and return flat response structs
// shaped for the API layer; they never modify state.
package queries
