package datamgr_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/telemetryco/sensorbuf/internal/datamgr"
	"github.com/telemetryco/sensorbuf/internal/record"
	"github.com/telemetryco/sensorbuf/internal/sbuf"
)

func TestManager_RunDrainsUntilTerminated(t *testing.T) {
	buf := sbuf.New[record.Record]()
	m, err := datamgr.New(datamgr.WithRoomMapping(datamgr.RoomMapping{1: 0}))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, buf.Insert(record.Record{ID: 1, Value: float64(i), TS: int64(i)}))
	}
	buf.Close()

	done := make(chan error, 1)
	go func() { done <- m.Run(context.Background(), buf) }()

	// drain S so the buffer can reclaim and Run can observe ErrTerminated.
	for {
		if _, err := buf.Remove(sbuf.S); err != nil {
			break
		}
	}

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after drain+close")
	}
}

func TestManager_ContextCancelStopsRun(t *testing.T) {
	buf := sbuf.New[record.Record]()
	m, err := datamgr.New()
	require.NoError(t, err)

	// Cancel before Run is even called: its first loop iteration must
	// observe ctx.Done() without ever blocking in Remove.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = m.Run(ctx, buf)
	require.ErrorIs(t, err, context.Canceled)

	buf.Close()
	_, _ = buf.Remove(sbuf.S)
	_, _ = buf.Remove(sbuf.D)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := datamgr.New(datamgr.WithThresholds(10, 5))
	require.ErrorIs(t, err, datamgr.ErrInvalidConfig)
}
