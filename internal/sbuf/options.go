package sbuf

import "github.com/telemetryco/sensorbuf/internal/sbuf/metrics"

// Option configures a Buffer at construction time.
type Option func(*config)

// WithMetrics attaches a metrics.Provider that New instruments the buffer
// with: a depth gauge updated on every Insert and reclamation, and a
// per-identity wait-time histogram recorded by every Remove that returns a
// value (a Remove that returns ErrTerminated records nothing).
// The default, when no WithMetrics option is given, is a no-op provider.
func WithMetrics(p metrics.Provider) Option {
	return func(c *config) {
		if p != nil {
			c.metrics = p
		}
	}
}
