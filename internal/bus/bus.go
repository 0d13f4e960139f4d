// Package bus connects to the websocket message bus that carries transcripts
// to the calculator and results back to whoever speaks them.
package bus

import (
	"context"
	"encoding/json"
	"fmt"
	log "log/slog"
	"net"
	"sync"
	"time"

	ws "github.com/gorilla/websocket"
	"golang.org/x/net/proxy"
)

// Message kinds.
const (
	// KindTranscript carries transcribed speech to evaluate in Content.
	KindTranscript = "transcript"
	// KindResult carries the spoken sentence in Content and the exact value
	// in Value.
	KindResult = "result"
	// KindError carries a message for the listener in Content and the
	// underlying error in Error.
	KindError = "error"
)

type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Kind    string `json:"kind"`
	Content string `json:"content"`
	Value   string `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MessageError is an error decoding a frame from the bus. The connection is
// still usable after a MessageError.
type MessageError struct {
	Raw []byte
	Err error
}

func (err *MessageError) Error() string {
	return fmt.Sprintf("decode bus message %q: %v", err.Raw, err.Err)
}

func (err *MessageError) Unwrap() error {
	return err.Err
}

type Options struct {
	// URL is the websocket address of the bus.
	URL string
	// Proxy is the address of a SOCKS5 proxy to dial through. Empty means
	// dial directly.
	Proxy string
	// HandshakeTimeout bounds the websocket handshake. Zero means 10s.
	HandshakeTimeout time.Duration
}

// Conn is a connection to the bus. Read and Write may each be used by one
// goroutine at a time; Close may be called from any goroutine.
type Conn struct {
	mu     sync.Mutex
	conn   *ws.Conn
	url    string
	dialer *ws.Dialer
}

func newDialer(opt Options) (*ws.Dialer, error) {
	d := &ws.Dialer{
		HandshakeTimeout: opt.HandshakeTimeout,
	}
	if d.HandshakeTimeout <= 0 {
		d.HandshakeTimeout = 10 * time.Second
	}
	if opt.Proxy == "" {
		return d, nil
	}
	socks, err := proxy.SOCKS5("tcp", opt.Proxy, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("socks proxy %s: %w", opt.Proxy, err)
	}
	if cd, ok := socks.(proxy.ContextDialer); ok {
		d.NetDialContext = cd.DialContext
	} else {
		d.NetDialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			return socks.Dial(network, addr)
		}
	}
	return d, nil
}

// Dial connects to the bus.
func Dial(ctx context.Context, opt Options) (*Conn, error) {
	d, err := newDialer(opt)
	if err != nil {
		return nil, err
	}
	c := &Conn{url: opt.URL, dialer: d}
	conn, _, err := d.DialContext(ctx, opt.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial bus %s: %w", opt.URL, err)
	}
	c.conn = conn
	log.Info("Connected to bus", "url", opt.URL, "proxy", opt.Proxy)
	return c, nil
}

func (c *Conn) current() *ws.Conn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn
}

// Read waits for the next message. Frames that are not valid messages give a
// *MessageError.
func (c *Conn) Read() (*Message, error) {
	_, raw, err := c.current().ReadMessage()
	if err != nil {
		return nil, err
	}
	log.Debug("Read bus", "msg", string(raw))
	var m Message
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, &MessageError{Raw: raw, Err: err}
	}
	return &m, nil
}

// Write sends a message.
func (c *Conn) Write(m *Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	log.Debug("Write bus", "msg", string(data))
	return c.current().WriteMessage(ws.TextMessage, data)
}

// Reconnect replaces the connection with a new one, retrying every delay until
// it succeeds or ctx is done.
func (c *Conn) Reconnect(ctx context.Context, delay time.Duration) error {
	if old := c.current(); old != nil {
		old.Close()
	}
	t := time.NewTimer(0)
	defer t.Stop()
	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
		if err == nil && ctx.Err() != nil {
			conn.Close()
			return ctx.Err()
		}
		if err == nil {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
			log.Info("Reconnected to bus", "url", c.url, "attempts", attempt)
			return nil
		}
		log.Debug("Bus reconnect failed", "url", c.url, "attempt", attempt, "err", err)
		t.Reset(delay)
	}
}

// Close closes the connection, interrupting a pending Read.
func (c *Conn) Close() error {
	return c.current().Close()
}

// IsClosed reports whether err indicates that the bus closed the connection.
func IsClosed(err error) bool {
	return ws.IsCloseError(err,
		ws.CloseNormalClosure,
		ws.CloseGoingAway,
		ws.CloseAbnormalClosure)
}
