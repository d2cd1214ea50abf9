package datamgr

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/telemetryco/sensorbuf/internal/record"
	"github.com/telemetryco/sensorbuf/internal/sbuf"
)

// Manager is consumer identity D. It owns no buffer state of its own; it
// only ever calls Buffer.Remove(sbuf.D).
type Manager struct {
	cfg     config
	monitor *Monitor
}

// New constructs a Manager. Construction never touches the buffer.
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
	return &Manager{
		cfg:     cfg,
		monitor: NewMonitor(cfg.WindowSize, cfg.MinTemp, cfg.MaxTemp, cfg.AnomalyBasis),
	}, nil
}

// Run is the consumer loop: it removes records from buf as identity D until
// buf reports sbuf.ErrTerminated, processing each through the room mapping
// and moving-average monitor. Run returns nil on a clean drain-and-close,
// or the first unexpected error from buf.Remove (anything other than
// ErrTerminated, which never happens in practice given sbuf's contract but
// is checked defensively since Remove's error set is not sealed).
//
// ctx is honored only between records — Remove itself is a blocking call
// with no context parameter, matching SBUF's synchronous contract; a
// cancelled ctx causes Run to stop requesting further records once the
// current Remove call returns, relying on the caller's Buffer.Close to
// eventually unblock it.
func (m *Manager) Run(ctx context.Context, buf *sbuf.Buffer[record.Record]) error {
	m.cfg.Logger.Info("datamgr: started")
	defer m.cfg.Logger.Info("datamgr: stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rec, err := buf.Remove(sbuf.D)
		if err != nil {
			if errors.Is(err, sbuf.ErrTerminated) {
				return nil
			}
			return err
		}

		m.process(rec)
	}
}

func (m *Manager) process(rec record.Record) {
	room, err := m.cfg.Mapping.Room(rec.ID)
	if err != nil {
		m.cfg.Logger.WithFields(logrus.Fields{
			"sensor_id": rec.ID,
		}).Warn("datamgr: reading from unmapped sensor, skipped")
		return
	}

	obs := m.monitor.Observe(room, rec.Value)
	if obs.Anomalous {
		m.cfg.Logger.WithFields(logrus.Fields{
			"room":    obs.Room,
			"value":   obs.Value,
			"average": obs.Average,
		}).Warn("datamgr: anomalous reading")
	}
}
