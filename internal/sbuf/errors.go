package sbuf

import "errors"

// Namespace prefixes every sentinel error in this package so a bare error
// string still identifies its source once wrapped and logged elsewhere.
const Namespace = "sbuf"

var (
	// ErrClosed is returned by Insert when the buffer has already been
	// closed. It carries no side effect: the value is not inserted.
	ErrClosed = errors.New(Namespace + ": buffer is closed")

	// ErrTerminated is returned by Remove when the calling identity's
	// cursor is empty and the buffer is closed: there will never be
	// another value for that identity. It is the consumer loop's signal
	// to exit.
	ErrTerminated = errors.New(Namespace + ": no more values, buffer is closed")

	// ErrInvalidIdentity is returned by Remove when called with a value
	// outside the closed {D, S} set.
	ErrInvalidIdentity = errors.New(Namespace + ": invalid consumer identity")
)
