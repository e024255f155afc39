package client

import (
	"chatterbox/domain"
	"chatterbox/domain/event"
	"chatterbox/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
)

var ErrNotConnected = fmt.Errorf("push channel not connected")

const (
	pushBufferSize = 64
	pushWriteWait  = 10 * time.Second
)

// PushClient keeps one websocket to the server alive.
// After every (re)connection it announces the identity and asks for a presence snapshot,
// since the online set is only ever rebuilt from events.
type PushClient struct {
	log        *slog.Logger
	url        string
	identity   domain.Identity
	handler    func(event.Envelope)
	dialer     *websocket.Dialer
	newBackOff func() backoff.BackOff

	mu          sync.Mutex
	send        chan event.Envelope
	onConnected func(bool)
}

func NewPushClient(log *slog.Logger, url string, identity domain.Identity, handler func(event.Envelope)) *PushClient {
	return &PushClient{
		log:      log,
		url:      url,
		identity: identity,
		handler:  handler,
		dialer:   websocket.DefaultDialer,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 250 * time.Millisecond
			b.MaxInterval = 10 * time.Second
			b.MaxElapsedTime = 0
			return b
		},
	}
}

// OnConnected is told about every connection state change.
func (p *PushClient) OnConnected(fn func(bool)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onConnected = fn
}

// Run dials, serves and redials with exponential backoff until ctx is done.
func (p *PushClient) Run(ctx context.Context) error {
	for {
		var conn *websocket.Conn
		dial := func() error {
			c, _, err := p.dialer.DialContext(ctx, p.url, nil)
			if err != nil {
				if ctx.Err() != nil {
					return backoff.Permanent(ctx.Err())
				}
				return err
			}
			conn = c
			return nil
		}
		notify := func(err error, next time.Duration) {
			p.log.Warn("Push connection failed, retrying", "in", next, "error", err)
		}
		if err := backoff.RetryNotify(dial, backoff.WithContext(p.newBackOff(), ctx), notify); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		p.serve(ctx, conn)
		if ctx.Err() != nil {
			return nil
		}
		p.log.Info("Push connection lost, reconnecting")
	}
}

// serve blocks until the connection is lost or ctx is done.
func (p *PushClient) serve(ctx context.Context, conn *websocket.Conn) {
	send := make(chan event.Envelope, pushBufferSize)
	join, _ := event.NewEnvelope(event.Join, event.JoinPayload{UserID: p.identity})
	snapshot, _ := event.NewEnvelope(event.PresenceSnapshot, struct{}{})
	send <- join
	send <- snapshot
	p.setSend(send)

	done := make(chan struct{})
	go p.writePump(ctx, conn, send, done)

	defer func() {
		p.setSend(nil)
		close(done)
		_ = conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				p.log.Debug("Push read failed", "error", err)
			}
			return
		}
		env, err := event.ParseEnvelope(raw)
		if err != nil {
			p.log.Debug("Ignoring malformed push frame", "error", err)
			continue
		}
		p.handler(env)
	}
}

func (p *PushClient) writePump(ctx context.Context, conn *websocket.Conn, send <-chan event.Envelope, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(pushWriteWait))
			_ = conn.Close()
			return
		case env := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(pushWriteWait))
			if err := conn.WriteJSON(env); err != nil {
				p.log.Debug("Push write failed", "event", env.Event, "error", err)
				_ = conn.Close()
				return
			}
		}
	}
}

func (p *PushClient) setSend(send chan event.Envelope) {
	p.mu.Lock()
	p.send = send
	onConnected := p.onConnected
	p.mu.Unlock()
	if onConnected != nil {
		onConnected(send != nil)
	}
}

// Emit enqueues an event for the current connection. It never waits:
// while offline the event is lost and ErrNotConnected is returned.
func (p *PushClient) Emit(name event.Name, payload any) error {
	env, err := event.NewEnvelope(name, payload)
	if err != nil {
		return err
	}
	p.mu.Lock()
	send := p.send
	p.mu.Unlock()
	if send == nil {
		return ErrNotConnected
	}
	select {
	case send <- env:
		return nil
	default:
		return errors.ErrChannelFull
	}
}
