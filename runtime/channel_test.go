package runtime

import (
	"chatterbox/domain/event"
	"context"
	"sync"
)

// RecordingChannel keeps every delivered envelope.
type RecordingChannel struct {
	mu     sync.Mutex
	id     string
	err    error
	events []event.Envelope
}

func NewRecordingChannel(id string) *RecordingChannel {
	return &RecordingChannel{id: id}
}

func (c *RecordingChannel) ID() string { return c.id }

func (c *RecordingChannel) Deliver(_ context.Context, env event.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, env)
	return nil
}

func (c *RecordingChannel) Events() []event.Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]event.Envelope(nil), c.events...)
}

func (c *RecordingChannel) Named(name event.Name) []event.Envelope {
	var out []event.Envelope
	for _, env := range c.Events() {
		if env.Event == name {
			out = append(out, env)
		}
	}
	return out
}
