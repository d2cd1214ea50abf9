package producer

import "github.com/sirupsen/logrus"

// Option configures a Listener. Use with New.
type Option func(*config)

// WithLogger overrides the default logrus.StandardLogger().
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithMaxFrameErrors sets the number of consecutive decode errors on one
// connection at which it is closed (default 1).
func WithMaxFrameErrors(n int) Option {
	return func(c *config) { c.MaxFrameErrors = n }
}
