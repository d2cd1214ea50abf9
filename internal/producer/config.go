package producer

import (
	"github.com/sirupsen/logrus"
)

// config holds Listener configuration.
type config struct {
	// Logger receives per-connection lifecycle and decode-error messages.
	// Default: logrus.StandardLogger().
	Logger *logrus.Logger

	// MaxFrameErrors is the number of consecutive decode errors on a single
	// connection at which that connection is closed.
	// Default: 1 (close on first malformed frame).
	MaxFrameErrors int
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		Logger:         logrus.StandardLogger(),
		MaxFrameErrors: 1,
	}
}

// validateConfig performs lightweight invariant checks.
func validateConfig(cfg *config) error {
	if cfg.Logger == nil {
		return ErrInvalidConfig
	}
	if cfg.MaxFrameErrors <= 0 {
		return ErrInvalidConfig
	}
	return nil
}
