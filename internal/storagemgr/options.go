package storagemgr

import "github.com/sirupsen/logrus"

// Option configures a Manager. Use with New.
type Option func(*config)

// WithDBPath overrides the default "sensorbuf.db" file path. Use
// ":memory:" for an ephemeral in-process database, as tests do.
func WithDBPath(path string) Option {
	return func(c *config) { c.DBPath = path }
}

// WithTableName overrides the default "measurements" table name.
func WithTableName(name string) Option {
	return func(c *config) { c.TableName = name }
}

// WithLogger overrides the default logrus.StandardLogger().
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.Logger = l
		}
	}
}
