// Package order provides the order record kept by the order ledger.
//
// The package includes:
//   - Order: An immutable record of who ordered which products, the total and the payment
//   - Status: The order's status label, Pending on creation
//
// Key business rules:
//   - Orders reference a consumer, a payment and at least one product
//   - Product ids keep their request order; repeating an id orders it twice
//   - An order is never mutated after creation; kitchen progress is tracked separately
//     by the preparation history
//   - Delivery requires the preparation history to report the order as ready
package order
