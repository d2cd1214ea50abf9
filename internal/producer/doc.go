// Package producer implements the single-producer front end of the
// ingestion service: a TCP listener that decodes the fixed-width wire
// record format and feeds it into an sbuf.Buffer.
//
// Lifecycle
//   - New(buf, opts...) constructs a Listener bound to nothing yet.
//   - Listen(ctx, addr) binds and accepts connections until ctx is
//     cancelled or Shutdown is called; it is the blocking call the CLI
//     driver runs on its main goroutine.
//   - Shutdown closes the listener, expires the deadline of every open
//     connection so a blocked read returns at once (a partly received
//     frame is dropped), waits for the connection goroutines to exit, and
//     calls buf.Close() exactly once. Shutdown is idempotent.
//
// Per-connection decode errors (a short read, a client disconnect mid-frame)
// close only that connection; they never reach buf.Close. Only exhaustion of
// the listener itself — the one producer — terminates the buffer.
package producer
