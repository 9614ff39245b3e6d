// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every command is built by its constructor, which validates the input, and is executed
// by a handler that resolves the aggregates it needs through ports.
package commands

import "restaurant/internal/core/domain/model/kernel"

// OrderLocker serializes preparation writes for a single order. Writes for different
// orders never wait on each other.
//
// Example:
//
//	unlock := locker.Lock(orderID)
//	defer unlock()
type OrderLocker interface {
	Lock(orderID kernel.UUID) (unlock func())
}
