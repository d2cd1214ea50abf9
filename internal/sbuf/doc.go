// Package sbuf implements a multi-consumer shared buffer: a single producer
// inserts values at the head of an internal list, and a fixed set of two
// independent consumers — D and S — each walk the list tail-ward at their
// own pace via a private cursor. A value is reclaimed only once both
// consumers have observed it.
//
// Synchronization
//
// One mutex guards all buffer state. Two condition variables, one per
// consumer identity, avoid waking a consumer that isn't starving: an Insert
// only signals the identities whose cursor was empty before the insert.
//
// Lifecycle
//
// Close is producer-initiated and idempotent; it broadcasts on both
// condition variables so any blocked consumer re-evaluates its predicate.
// Once closed and drained, Remove returns ErrTerminated to both consumers.
// Destroy must only be called after both consumers have returned from their
// final Remove call; calling it on a non-empty buffer is a programming
// error and panics.
//
// Ownership
//
// Buffer owns every node exclusively. Values leave the buffer by copy;
// callers never receive a pointer into the internal list.
package sbuf
