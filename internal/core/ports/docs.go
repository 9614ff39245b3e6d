// Package ports defines the contracts between the application layer and the adapters:
// repositories for the order ledger, catalog and preparation history, and the publisher
// for preparation events.
//
// Implementations must make every individual call atomic with respect to concurrent
// callers. No call spans more than one repository; there are no transactions.
package ports
