package event

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"unicode/utf8"

	"github.com/hyprwire/hyprwire/internal/logger"
)

// DefaultBufferSize is the read-chunk size the driver uses unless
// WithBufferSize overrides it. The protocol puts no constraint on it; lines
// split across reads are carried over either way.
const DefaultBufferSize = 4096

// Handler consumes decoded events. Handlers run synchronously on the
// driver's goroutine, one event at a time, in registration order.
type Handler interface {
	HandleEvent(Event)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(Event)

func (f HandlerFunc) HandleEvent(ev Event) { f(ev) }

// Option configures a Client.
type Option func(*Client)

// WithBufferSize sets the socket read-chunk size.
func WithBufferSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.bufSize = n
		}
	}
}

// Client drives one event-socket connection: it reads raw bytes, splits
// them into lines, runs each line through classification, decoding and
// focus reassembly, and hands the resulting events to consumers.
//
// A Client owns its connection exclusively; never share one connection
// between drivers. Register all handlers before calling Run or Stream:
// the registry is configuration-time state and is not read under a lock.
type Client struct {
	conn     net.Conn
	bufSize  int
	handlers map[EventKind][]Handler
	all      []Handler
	reasm    Reassembler
}

// NewClient wraps a connected event socket. The caller keeps responsibility
// for closing conn unless Run/Stream consume it to the end.
func NewClient(conn net.Conn, opts ...Option) *Client {
	c := &Client{
		conn:     conn,
		bufSize:  DefaultBufferSize,
		handlers: make(map[EventKind][]Handler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers h for events of one kind. To receive the merged focus
// event, subscribe to KindActiveWindowChanged; the raw sub-events are
// absorbed by the reassembler and never dispatched.
func (c *Client) Subscribe(kind EventKind, h Handler) {
	c.handlers[kind] = append(c.handlers[kind], h)
}

// SubscribeAll registers h for every event kind. Kind-specific handlers for
// an event run first, then the all-kind handlers, each list in registration
// order.
func (c *Client) SubscribeAll(h Handler) {
	c.all = append(c.all, h)
}

// PendingActiveWindows exposes the reassembler's outstanding-record count
// for diagnostics.
func (c *Client) PendingActiveWindows() int {
	return c.reasm.PendingCount()
}

// Run consumes the stream until it closes or a parse error occurs, invoking
// registered handlers for each event. It returns nil on orderly close and
// ctx.Err() when the context ended the stream.
func (c *Client) Run(ctx context.Context) error {
	s := c.Stream()
	for s.Next(ctx) {
		c.dispatch(s.Event())
	}
	return s.Err()
}

func (c *Client) dispatch(ev Event) {
	for _, h := range c.handlers[ev.Kind()] {
		h.HandleEvent(ev)
	}
	for _, h := range c.all {
		h.HandleEvent(ev)
	}
}

// Stream returns the pull-style view of the connection: a lazy sequence of
// decoded, reassembled events the caller advances explicitly. The sequence
// restarts per connection and cannot rewind. Use either Run or Stream on a
// Client, not both.
func (c *Client) Stream() *Stream {
	return &Stream{
		c:   c,
		buf: make([]byte, c.bufSize),
	}
}

// Stream iterates decoded events in the manner of bufio.Scanner: Next
// advances, Event returns the current item, Err reports what ended the
// stream (nil on orderly close).
type Stream struct {
	c     *Client
	split lineSplitter
	buf   []byte
	queue []Event
	cur   Event
	err   error
	done  bool
}

// Next blocks until an event is available, the stream ends, or ctx is
// canceled. The socket read is the only blocking point; decoding and
// reassembly happen synchronously before Next returns, so lines are always
// processed strictly in arrival order.
func (s *Stream) Next(ctx context.Context) bool {
	for s.err == nil && !s.done && len(s.queue) == 0 {
		s.fill(ctx)
	}
	if len(s.queue) == 0 {
		return false
	}
	s.cur = s.queue[0]
	s.queue = s.queue[1:]
	return true
}

// Event returns the event produced by the last successful Next.
func (s *Stream) Event() Event { return s.cur }

// Err returns the error that terminated the stream. It is nil after an
// orderly close (zero-byte read) of the connection.
func (s *Stream) Err() error { return s.err }

// fill performs one socket read and folds every complete line it produced
// into the event queue.
func (s *Stream) fill(ctx context.Context) {
	// Canceling ctx closes the connection, which is the one way to
	// interrupt a blocked read on a unix socket.
	stop := context.AfterFunc(ctx, func() { _ = s.c.conn.Close() })
	n, readErr := s.c.conn.Read(s.buf)
	stop()

	if n > 0 {
		lines, err := s.split.push(s.buf[:n])
		for _, line := range lines {
			if s.err != nil {
				break
			}
			s.decodeLine(line)
		}
		if s.err == nil && err != nil {
			s.err = err
		}
	}

	if readErr != nil && s.err == nil && !s.done {
		switch {
		case errors.Is(readErr, io.EOF):
			s.done = true
			logger.Debug("event socket closed by compositor")
			if len(s.split.carry) > 0 {
				logger.Debugf("discarding %d bytes of partial line at end of stream", len(s.split.carry))
			}
		case ctx.Err() != nil:
			s.err = ctx.Err()
		default:
			s.err = fmt.Errorf("read event socket: %w", readErr)
		}
	}
}

func (s *Stream) decodeLine(line string) {
	ev, err := parseLine(line)
	if err == errUnknownEvent {
		return
	}
	if err != nil {
		s.err = err
		return
	}
	s.queue = append(s.queue, s.c.reasm.Push(ev)...)
}

// lineSplitter accumulates raw socket bytes and yields complete, trimmed
// lines, carrying a trailing partial line over to the next push.
type lineSplitter struct {
	carry []byte
}

func (l *lineSplitter) push(chunk []byte) ([]string, error) {
	l.carry = append(l.carry, chunk...)
	var lines []string
	for {
		i := bytes.IndexByte(l.carry, '\n')
		if i < 0 {
			return lines, nil
		}
		raw := l.carry[:i]
		l.carry = l.carry[i+1:]
		if !utf8.Valid(raw) {
			return lines, fmt.Errorf("event socket sent invalid utf-8: %q", raw)
		}
		line := strings.TrimSpace(string(raw))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
}
