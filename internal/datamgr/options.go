package datamgr

import "github.com/sirupsen/logrus"

// Option configures a Manager. Use with New.
type Option func(*config)

// WithRoomMapping overrides the built-in sensor-to-room table.
func WithRoomMapping(m RoomMapping) Option {
	return func(c *config) {
		if m != nil {
			c.Mapping = m
		}
	}
}

// WithWindowSize sets the number of recent readings averaged per room
// (default 5).
func WithWindowSize(n int) Option {
	return func(c *config) { c.WindowSize = n }
}

// WithThresholds sets the anomaly thresholds (defaults 0, 35).
func WithThresholds(min, max float64) Option {
	return func(c *config) { c.MinTemp, c.MaxTemp = min, max }
}

// WithAnomalyBasis selects whether thresholds compare against the raw
// reading or the room's running average (default BasisRunningAverage).
func WithAnomalyBasis(b AnomalyBasis) Option {
	return func(c *config) { c.AnomalyBasis = b }
}

// WithLogger overrides the default logrus.StandardLogger().
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.Logger = l
		}
	}
}
