package backend

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/mmcdole/muse/internal/domain"
)

// maxFrame bounds one inbound line. Cover batches carry base64 images.
const maxFrame = 64 << 20

// Conn is a duplex JSON-lines connection. Send implements domain.Requester.
type Conn struct {
	r      io.Reader
	w      io.Writer
	logger *slog.Logger

	mu     sync.Mutex // guards w and closed
	closed bool

	errMu   sync.Mutex
	readErr error
	done    chan struct{} // closed when the listener returns
}

// NewConn wraps a reader of event lines and a writer of request lines
func NewConn(r io.Reader, w io.Writer, logger *slog.Logger) *Conn {
	if logger == nil {
		logger = slog.Default()
	}
	return &Conn{r: r, w: w, logger: logger}
}

// Send writes req. Failures are logged, never returned: requests are
// fire-and-forget and the caller learns of effects only through events.
func (c *Conn) Send(req domain.Request) {
	if err := c.Write(req); err != nil {
		c.logger.Error("failed to send request", "request", fmt.Sprintf("%T", req), "error", err)
	}
}

// Write encodes and writes req, reporting failures
func (c *Conn) Write(req domain.Request) error {
	line, err := EncodeRequest(req)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrTransportClosed
	}
	if _, err := c.w.Write(line); err != nil {
		return fmt.Errorf("write %s request: %w", req.Channel(), err)
	}
	c.logger.Debug("sent request", "channel", req.Channel(), "bytes", len(line))
	return nil
}

// Listen decodes events in a goroutine until the reader ends or ctx is
// done. The returned channel is closed afterwards; Err reports why.
// Malformed lines are logged and skipped.
func (c *Conn) Listen(ctx context.Context) <-chan domain.PushEvent {
	events := make(chan domain.PushEvent, 64)
	done := make(chan struct{})
	c.errMu.Lock()
	c.done = done
	c.errMu.Unlock()

	go func() {
		defer close(done)
		defer close(events)

		scanner := bufio.NewScanner(c.r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxFrame)

		for scanner.Scan() {
			if err := ctx.Err(); err != nil {
				c.setErr(err)
				return
			}
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			ev, err := DecodeEvent(line)
			if err != nil {
				c.logger.Warn("dropping inbound frame", "error", err)
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				c.setErr(ctx.Err())
				return
			}
		}

		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		c.setErr(err)
		c.logger.Info("backend stream ended", "error", err)
	}()

	return events
}

func (c *Conn) setErr(err error) {
	c.errMu.Lock()
	c.readErr = err
	c.errMu.Unlock()
}

// Err returns why the listener stopped, or nil while it runs
func (c *Conn) Err() error {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.readErr
}

// Done is closed once the listener has stopped reading. It is nil before
// Listen is called.
func (c *Conn) Done() <-chan struct{} {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.done
}

// Close stops further writes, closing the writer when it is a Closer
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if wc, ok := c.w.(io.Closer); ok {
		if err := wc.Close(); err != nil && !errors.Is(err, io.ErrClosedPipe) {
			return err
		}
	}
	return nil
}
