package producer

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/telemetryco/sensorbuf/internal/record"
	"github.com/telemetryco/sensorbuf/internal/sbuf"
)

// Listener is the single producer in front of an sbuf.Buffer. It accepts any
// number of concurrent TCP connections, decodes each as an independent
// stream of fixed-width wire records, and calls Insert for every record
// successfully decoded.
type Listener struct {
	cfg config
	buf *sbuf.Buffer[record.Record]

	mu       sync.Mutex
	ln       net.Listener
	started  bool
	shutdown bool
	conns    sync.WaitGroup
	open     map[net.Conn]struct{}
}

// New constructs a Listener that inserts decoded records into buf. It does
// not bind a socket until Listen is called.
func New(buf *sbuf.Buffer[record.Record], opts ...Option) (*Listener, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &Listener{cfg: cfg, buf: buf}, nil
}

// Listen binds addr (e.g. ":9000") and accepts connections until ctx is
// cancelled or Shutdown is called. It blocks the calling goroutine — the
// CLI driver runs it on main. Listen returns nil on a clean shutdown, and
// ErrAlreadyListening if called more than once.
func (l *Listener) Listen(ctx context.Context, addr string) error {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return ErrAlreadyListening
	}
	l.started = true
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	l.ln = ln
	l.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = l.Shutdown()
	}()

	l.cfg.Logger.WithField("addr", addr).Info("producer: listening")

	for {
		conn, err := ln.Accept()
		if err != nil {
			l.mu.Lock()
			shuttingDown := l.shutdown
			l.mu.Unlock()
			if shuttingDown {
				l.conns.Wait()
				return nil
			}
			return err
		}

		l.mu.Lock()
		if l.shutdown {
			l.mu.Unlock()
			_ = conn.Close()
			continue
		}
		if l.open == nil {
			l.open = make(map[net.Conn]struct{})
		}
		l.open[conn] = struct{}{}
		l.conns.Add(1)
		l.mu.Unlock()

		go l.handle(conn)
	}
}

// Shutdown closes the listening socket, forces every open connection past
// any in-progress blocking read by expiring its deadline, waits for the
// decode loops to exit, then closes buf exactly once. Without the forced
// deadline a connection left open by a client that never sends a full
// frame or EOF would keep its handle goroutine blocked in codec.Decode
// forever, and conns.Wait below would never return. Shutdown is idempotent
// and safe to call concurrently with Listen.
func (l *Listener) Shutdown() error {
	l.mu.Lock()
	if l.shutdown {
		l.mu.Unlock()
		return nil
	}
	l.shutdown = true
	ln := l.ln
	l.mu.Unlock()

	var err error
	if ln != nil {
		err = ln.Close()
	}
	l.mu.Lock()
	for conn := range l.open {
		_ = conn.SetDeadline(time.Now())
	}
	l.mu.Unlock()
	l.conns.Wait()
	l.buf.Close()
	l.cfg.Logger.Info("producer: shut down, buffer closed")
	return err
}

// handle decodes one connection's record stream and inserts each record.
// A malformed frame or disconnect closes this connection only; it never
// reaches Buffer.Close.
func (l *Listener) handle(conn net.Conn) {
	defer l.conns.Done()
	defer conn.Close()
	defer func() {
		l.mu.Lock()
		delete(l.open, conn)
		l.mu.Unlock()
	}()

	log := l.cfg.Logger.WithField("remote", conn.RemoteAddr().String())
	log.Debug("producer: connection opened")

	var codec record.Codec
	consecutiveErrors := 0

	for {
		rec, err := codec.Decode(conn)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				log.Debug("producer: connection forced closed on shutdown")
				return
			}
			if errors.Is(err, io.EOF) {
				log.Debug("producer: connection closed by peer")
				return
			}
			consecutiveErrors++
			log.WithError(err).Warn("producer: frame decode failed")
			if consecutiveErrors >= l.cfg.MaxFrameErrors {
				return
			}
			continue
		}
		consecutiveErrors = 0

		if err := l.buf.Insert(rec); err != nil {
			// ErrClosed: buffer is shutting down underneath an in-flight
			// connection. Stop accepting more records on this connection.
			log.WithError(err).Debug("producer: insert rejected, buffer closed")
			return
		}
	}
}
