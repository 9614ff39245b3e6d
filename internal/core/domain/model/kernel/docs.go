// Package kernel provides core domain primitives shared by the restaurant model.
//
// The package includes:
//   - UUID: A value object for entity identifiers with validation and comparison
//   - Money: A decimal amount used for product prices, payments and order totals
//   - Clock: The source of creation instants, injectable so tests control time
//
// These primitives are immutable and safe for concurrent use.
package kernel
