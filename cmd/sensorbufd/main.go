// Command sensorbufd is the process entry point for the sensor-telemetry
// ingestion service: it wires a TCP producer, a data manager consumer, and
// a storage manager consumer around a single shared buffer, and drives the
// drain-then-close shutdown protocol on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/telemetryco/sensorbuf/internal/datamgr"
	"github.com/telemetryco/sensorbuf/internal/producer"
	"github.com/telemetryco/sensorbuf/internal/record"
	"github.com/telemetryco/sensorbuf/internal/sbuf"
	"github.com/telemetryco/sensorbuf/internal/sbuf/metrics"
	"github.com/telemetryco/sensorbuf/internal/storagemgr"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sensorbufd <port>",
		Short: "Sensor telemetry ingestion daemon",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	f := rootCmd.Flags()
	f.String("db-path", "sensorbuf.db", "SQLite file path for persisted measurements")
	f.String("room-mapping", "", "path to a sensor-ID,room-ID mapping file (default: built-in table)")
	f.String("log-level", "info", "logrus level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	port, err := parsePort(args[0])
	if err != nil {
		return err
	}

	f := cmd.Flags()
	dbPath, _ := f.GetString("db-path")
	roomMappingPath, _ := f.GetString("room-mapping")
	logLevel, _ := f.GetString("log-level")

	log := logrus.New()
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("sensorbufd: invalid --log-level %q: %w", logLevel, err)
	}
	log.SetLevel(level)

	buf := sbuf.New[record.Record](sbuf.WithMetrics(metrics.NewBasicProvider()))

	datamgrOpts := []datamgr.Option{datamgr.WithLogger(log)}
	if roomMappingPath != "" {
		mapping, err := datamgr.LoadRoomMapping(roomMappingPath)
		if err != nil {
			return fmt.Errorf("sensorbufd: %w", err)
		}
		datamgrOpts = append(datamgrOpts, datamgr.WithRoomMapping(mapping))
	}
	dm, err := datamgr.New(datamgrOpts...)
	if err != nil {
		return fmt.Errorf("sensorbufd: datamgr: %w", err)
	}

	sm, err := storagemgr.New(storagemgr.WithDBPath(dbPath), storagemgr.WithLogger(log))
	if err != nil {
		return fmt.Errorf("sensorbufd: storagemgr: %w", err)
	}
	if err := sm.Open(); err != nil {
		return fmt.Errorf("sensorbufd: %w", err)
	}
	defer sm.Close() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Two long-lived consumer loops, one goroutine each, joined by a
	// WaitGroup — the Go equivalent of the daemon's pthread_create pair
	// for the data manager and storage manager threads, joined at the end
	// via pthread_join.
	consumers := []func(context.Context) error{
		func(c context.Context) error { return dm.Run(c, buf) },
		func(c context.Context) error { return sm.Run(c, buf) },
	}
	consumerErrs := make([]error, len(consumers))
	var consumersWG sync.WaitGroup
	for i, run := range consumers {
		consumersWG.Add(1)
		go func(i int, run func(context.Context) error) {
			defer consumersWG.Done()
			consumerErrs[i] = run(ctx)
		}(i, run)
	}
	consumersDone := make(chan error, 1)
	go func() {
		consumersWG.Wait()
		consumersDone <- errors.Join(consumerErrs...)
	}()

	listener, err := producer.New(buf, producer.WithLogger(log))
	if err != nil {
		return fmt.Errorf("sensorbufd: producer: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.WithField("signal", sig.String()).Info("sensorbufd: shutting down")
		_ = listener.Shutdown()
	}()

	addr := fmt.Sprintf(":%d", port)
	if err := listener.Listen(ctx, addr); err != nil {
		return fmt.Errorf("sensorbufd: listen: %w", err)
	}

	if err := <-consumersDone; err != nil {
		log.WithError(err).Error("sensorbufd: a consumer exited with error")
	}
	buf.Destroy()
	return nil
}

// parsePort converts s with strconv.ParseUint, which accepts only a whole
// base-10 number in the uint16 range, mirroring the original daemon's
// print_usage contract: a trailing non-digit character is a usage error,
// not a truncated-parse success.
func parsePort(s string) (uint64, error) {
	port, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("sensorbufd: invalid port %q: %w", s, err)
	}
	return port, nil
}
