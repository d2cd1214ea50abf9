package producer

import "errors"

const Namespace = "producer"

var (
	// ErrAlreadyListening is returned by Listen if called more than once on
	// the same Listener.
	ErrAlreadyListening = errors.New(Namespace + ": Listen called more than once")

	// ErrShutdown names the shut-down state of a Listener. Listen does not
	// return it: once Shutdown has been called and the accept loop has
	// exited cleanly, Listen returns nil.
	ErrShutdown = errors.New(Namespace + ": listener shut down")

	// ErrInvalidConfig is returned when a supplied Option produces an
	// unusable config.
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
)
