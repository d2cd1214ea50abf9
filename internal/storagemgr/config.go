package storagemgr

import "github.com/sirupsen/logrus"

// config holds Manager configuration.
type config struct {
	// DBPath is the SQLite file path. Default: "sensorbuf.db".
	DBPath string

	// TableName is the measurements table name. Default: "measurements".
	TableName string

	// Logger receives lifecycle and insert-failure log lines.
	// Default: logrus.StandardLogger().
	Logger *logrus.Logger
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		DBPath:    "sensorbuf.db",
		TableName: "measurements",
		Logger:    logrus.StandardLogger(),
	}
}

// validateConfig performs lightweight invariant checks.
func validateConfig(cfg *config) error {
	if cfg.DBPath == "" {
		return ErrInvalidConfig
	}
	if cfg.TableName == "" {
		return ErrInvalidConfig
	}
	if cfg.Logger == nil {
		return ErrInvalidConfig
	}
	return nil
}
