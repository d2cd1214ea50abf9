package datamgr

import "github.com/sirupsen/logrus"

// config holds Manager configuration.
type config struct {
	// Mapping maps sensor IDs to room IDs. Default: a small built-in table.
	Mapping RoomMapping

	// WindowSize is the number of recent readings averaged per room.
	// Default: 5.
	WindowSize int

	// MinTemp and MaxTemp are the thresholds an anomalous reading (or
	// running average, per AnomalyBasis) falls outside of.
	// Defaults: 0, 35.
	MinTemp, MaxTemp float64

	// AnomalyBasis selects whether thresholds compare against the raw
	// reading or the room's running average. Default: BasisRunningAverage.
	AnomalyBasis AnomalyBasis

	// Logger receives anomaly and lifecycle log lines.
	// Default: logrus.StandardLogger().
	Logger *logrus.Logger
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		Mapping:      defaultRoomMapping(),
		WindowSize:   5,
		MinTemp:      0,
		MaxTemp:      35,
		AnomalyBasis: BasisRunningAverage,
		Logger:       logrus.StandardLogger(),
	}
}

// validateConfig performs lightweight invariant checks.
func validateConfig(cfg *config) error {
	if cfg.WindowSize <= 0 {
		return ErrInvalidConfig
	}
	if cfg.MinTemp >= cfg.MaxTemp {
		return ErrInvalidConfig
	}
	if cfg.Logger == nil {
		return ErrInvalidConfig
	}
	if cfg.Mapping == nil {
		return ErrInvalidConfig
	}
	return nil
}
