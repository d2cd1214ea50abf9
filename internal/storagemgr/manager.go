package storagemgr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/telemetryco/sensorbuf/internal/record"
	"github.com/telemetryco/sensorbuf/internal/sbuf"
)

// Manager is consumer identity S. It owns the database connection and a
// prepared insert statement, both created once by Open and reused across
// records to avoid a per-record allocation and parse cost.
type Manager struct {
	cfg    config
	conn   *sql.DB
	insert *sql.Stmt
}

// New constructs a Manager. Construction never touches the database; call
// Open before Run.
func New(opts ...Option) (*Manager, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &Manager{cfg: cfg}, nil
}

// Open opens the SQLite database, creates the measurements table if it
// does not already exist, and prepares the insert statement.
func (m *Manager) Open() error {
	conn, err := sql.Open("sqlite", m.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("storagemgr: open %q: %w", m.cfg.DBPath, err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return fmt.Errorf("storagemgr: ping %q: %w", m.cfg.DBPath, err)
	}

	schema := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (
			sensor_id INTEGER NOT NULL,
			value     REAL NOT NULL,
			ts        INTEGER NOT NULL
		)`, m.cfg.TableName)
	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return fmt.Errorf("storagemgr: create table: %w", err)
	}

	insert, err := conn.Prepare(fmt.Sprintf(
		`INSERT INTO %s (sensor_id, value, ts) VALUES (?, ?, ?)`, m.cfg.TableName))
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("storagemgr: prepare insert: %w", err)
	}

	m.conn = conn
	m.insert = insert
	return nil
}

// Close releases the prepared statement and the database connection.
func (m *Manager) Close() error {
	var firstErr error
	if m.insert != nil {
		if err := m.insert.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if m.conn != nil {
		if err := m.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Run is the consumer loop: it removes records from buf as identity S
// until buf reports sbuf.ErrTerminated, persisting each via the prepared
// insert statement. A failed insert is logged and the record dropped —
// SBUF has no redelivery concept. Run returns ErrNotOpen if Open was not
// called first.
func (m *Manager) Run(ctx context.Context, buf *sbuf.Buffer[record.Record]) error {
	if m.conn == nil || m.insert == nil {
		return ErrNotOpen
	}

	m.cfg.Logger.Info("storagemgr: started")
	defer m.cfg.Logger.Info("storagemgr: stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rec, err := buf.Remove(sbuf.S)
		if err != nil {
			if errors.Is(err, sbuf.ErrTerminated) {
				return nil
			}
			return err
		}

		m.persist(rec)
	}
}

func (m *Manager) persist(rec record.Record) {
	if _, err := m.insert.Exec(rec.ID, rec.Value, rec.TS); err != nil {
		m.cfg.Logger.WithFields(logrus.Fields{
			"sensor_id": rec.ID,
			"error":     err,
		}).Error("storagemgr: insert failed, record dropped")
	}
}
