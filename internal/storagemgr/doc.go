// Package storagemgr implements consumer S of the shared buffer: it
// persists every record to a SQLite-backed measurements table via
// modernc.org/sqlite, a pure-Go (no cgo) SQLite driver.
//
// Manager follows the canonical consumer lifecycle: Open opens the
// database and prepares the insert statement once at startup, Run loops on
// Buffer.Remove(sbuf.S) until it reports sbuf.ErrTerminated, and Close
// releases the statement and the connection; Run itself neither opens nor
// closes the database. A failed insert is logged and the record is
// dropped — SBUF has no redelivery concept, so there is nowhere to put it
// back.
package storagemgr
