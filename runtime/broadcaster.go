package runtime

import (
	"chatterbox/contract"
	"chatterbox/domain/event"
	"context"
	"log/slog"
	"sync"
)

// PresenceBroadcaster pushes every presence transition to all connected
// channels, without relevance filtering, then to the permanent observers.
//
// Delivery is best-effort: a full or closed channel is skipped and never
// stops the fan-out.
type PresenceBroadcaster struct {
	log       *slog.Logger
	registry  contract.IRegistry
	mu        sync.RWMutex
	nextID    int
	observers map[int]contract.PresenceListener
}

func NewPresenceBroadcaster(log *slog.Logger, registry contract.IRegistry) *PresenceBroadcaster {
	return &PresenceBroadcaster{
		log:       log,
		registry:  registry,
		observers: make(map[int]contract.PresenceListener),
	}
}

func (b *PresenceBroadcaster) OnPresence(ctx context.Context, p event.Presence) {
	env, err := p.Envelope()
	if err != nil {
		b.log.Error("Unable to encode presence", "identity", p.Identity, "error", err)
		return
	}
	for _, ch := range b.registry.Channels() {
		if err := ch.Deliver(ctx, env); err != nil {
			b.log.Debug("Presence not delivered", "channel", ch.ID(), "error", err)
		}
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, observer := range b.observers {
		observer.OnPresence(ctx, p)
	}
}

// Observe adds a permanent observer, outside the registry.
// The returned func removes it.
func (b *PresenceBroadcaster) Observe(l contract.PresenceListener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.observers[id] = l
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.observers, id)
	}
}
