// Package shard runs the calculator as a participant on the message bus.
package shard

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/zephyrtronium/vocal"
	"github.com/zephyrtronium/vocal/internal/bus"
)

// Conn is a connection to the bus.
type Conn interface {
	Read() (*bus.Message, error)
	Write(*bus.Message) error
	Reconnect(ctx context.Context, delay time.Duration) error
	Close() error
}

// Shard answers transcripts addressed to it with their results.
type Shard struct {
	// Name is the shard's address on the bus.
	Name string
	// Eval evaluates transcripts.
	Eval *vocal.Context
	// Format formats results for Say.
	Format string
	// Log receives records about messages.
	Log *slog.Logger
}

// New creates a shard. A nil logger means slog.Default.
func New(name string, eval *vocal.Context, format string, log *slog.Logger) *Shard {
	if log == nil {
		log = slog.Default()
	}
	return &Shard{Name: name, Eval: eval, Format: format, Log: log}
}

// Handle evaluates a transcript and returns the reply to send. It returns nil
// for messages addressed to another shard and for messages that are not
// transcripts.
func (s *Shard) Handle(m *bus.Message) *bus.Message {
	if m.To != "" && m.To != s.Name {
		return nil
	}
	if m.Kind != bus.KindTranscript {
		s.Log.Debug("ignoring message", "from", m.From, "kind", m.Kind)
		return nil
	}
	text := strings.TrimSpace(m.Content)
	reply := &bus.Message{From: s.Name, To: m.From}
	r, err := s.Eval.Eval(text)
	if err != nil {
		s.Log.Warn("evaluation failed", "from", m.From, "text", text, "err", err)
		reply.Kind = bus.KindError
		reply.Content = vocal.Explain(err)
		reply.Error = err.Error()
		return reply
	}
	reply.Kind = bus.KindResult
	reply.Content = vocal.Say(r, s.Format)
	reply.Value = r.Text('g', -1)
	s.Log.Info("evaluated", "from", m.From, "text", text, "result", reply.Value)
	return reply
}

// Run reads messages from conn and answers them until ctx is canceled. When
// reading or writing fails, Run reconnects, waiting reconnect between
// attempts. Run closes conn when it returns.
func (s *Shard) Run(ctx context.Context, conn Conn, reconnect time.Duration) error {
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()
	defer conn.Close()
	for {
		m, err := conn.Read()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			var merr *bus.MessageError
			if errors.As(err, &merr) {
				s.Log.Warn("bad message", "err", err)
				continue
			}
			if bus.IsClosed(err) {
				s.Log.Info("bus closed connection", "err", err)
			} else {
				s.Log.Error("bus read failed", "err", err)
			}
			if err := reconnectConn(ctx, conn, reconnect); err != nil {
				return err
			}
			continue
		}
		reply := s.Handle(m)
		if reply == nil {
			continue
		}
		if err := conn.Write(reply); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.Log.Error("bus write failed", "err", err)
			if err := reconnectConn(ctx, conn, reconnect); err != nil {
				return err
			}
		}
	}
}

// reconnectConn reconnects conn. A cancellation that arrives while the dial is
// in flight closes only the old connection, so it is reported here instead.
func reconnectConn(ctx context.Context, conn Conn, delay time.Duration) error {
	if err := conn.Reconnect(ctx, delay); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		conn.Close()
		return err
	}
	return nil
}
