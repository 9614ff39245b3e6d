// Package memory groups the in-memory adapters implementing the ports. State lives for
// the lifetime of the process only.
//
// Every repository guards its collection with a sync.RWMutex, so each call is atomic on
// its own. Callers that need several calls to act as one (the preparation engine's
// read-latest-then-append) serialize at their level.
package memory
