// Package preparation models kitchen progress for an order as an append-only history of
// immutable snapshots.
//
// The package includes:
//   - Station: The four kitchen stations (grill, salad, fries, refill)
//   - Snapshot: The state of all four stations for one order at one instant
//   - FirstUpdatePolicy: What a station update does when the order has no history yet
//
// Key business rules:
//   - Snapshots are never mutated; a station update derives a new snapshot from the
//     latest one by copying its flags forward and forcing one flag true
//   - Ready is true iff all four flags are true, computed when the snapshot is built
//   - A completed order still accepts updates; flags and readiness stay true
//   - The current status of an order is its newest snapshot: latest timestamp, ties broken
//     by the higher snapshot id
//
// State view of one order:
//
//	{} ──grill──> {grill} ──salad──> {grill,salad} ── ... ──> {grill,salad,fries,refill} (ready)
//
// Every edge appends a snapshot; stations may complete in any order and repeat.
package preparation
