package sbuf

import "github.com/telemetryco/sensorbuf/internal/sbuf/metrics"

// config holds Buffer configuration assembled from Options.
type config struct {
	metrics metrics.Provider
}

// defaultConfig centralizes default values for config. It is applied once,
// at construction time, before Options are applied.
func defaultConfig() config {
	return config{
		metrics: metrics.NewNoopProvider(),
	}
}
