package runtime

import (
	"chatterbox/contract"
	"chatterbox/domain"
	"chatterbox/domain/event"
	"context"
	"sort"
	"sync"
	"time"
)

// Registry maps every reachable identity to its single active channel.
// A reverse index (channel -> identity) keeps Unregister O(1).
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.Identity]contract.Channel // map identity -> active channel
	owners   map[string]domain.Identity           // map channel ID -> identity
	listener contract.PresenceListener
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[domain.Identity]contract.Channel),
		owners:   make(map[string]domain.Identity),
	}
}

// SetListener plugs the receiver of presence transitions.
// Must be called before the first Register.
func (r *Registry) SetListener(listener contract.PresenceListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listener = listener
}

// Register binds identity to ch, silently replacing any previous channel of
// that identity. The replaced channel gets no signal and its later Unregister
// is a no-op. An online presence is emitted on every call, even when the
// identity was already online.
// A channel rebound to another identity releases the previous one, which goes offline.
func (r *Registry) Register(ctx context.Context, identity domain.Identity, ch contract.Channel) {
	r.mu.Lock()
	var released []domain.Identity

	if previous, ok := r.sessions[identity]; ok && previous.ID() != ch.ID() {
		delete(r.owners, previous.ID())
	}
	if owner, ok := r.owners[ch.ID()]; ok && owner != identity {
		delete(r.sessions, owner)
		released = append(released, owner)
	}
	r.sessions[identity] = ch
	r.owners[ch.ID()] = identity
	listener := r.listener
	r.mu.Unlock()

	for _, owner := range released {
		r.emit(ctx, listener, owner, domain.StatusOffline)
	}
	r.emit(ctx, listener, identity, domain.StatusOnline)
}

// Unregister removes the entry owned by ch and emits an offline presence.
// It returns false, and emits nothing, when ch is not the active channel of
// any identity (superseded or never joined).
func (r *Registry) Unregister(ctx context.Context, ch contract.Channel) bool {
	r.mu.Lock()
	identity, ok := r.owners[ch.ID()]
	if !ok {
		r.mu.Unlock()
		return false
	}
	delete(r.owners, ch.ID())
	delete(r.sessions, identity)
	listener := r.listener
	r.mu.Unlock()

	r.emit(ctx, listener, identity, domain.StatusOffline)
	return true
}

func (r *Registry) Lookup(identity domain.Identity) (contract.Channel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.sessions[identity]
	return ch, ok
}

// Channels returns a snapshot of every active channel.
func (r *Registry) Channels() []contract.Channel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	channels := make([]contract.Channel, 0, len(r.sessions))
	for _, ch := range r.sessions {
		channels = append(channels, ch)
	}
	return channels
}

// Online returns the sorted identities currently registered.
func (r *Registry) Online() []domain.Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	identities := make([]domain.Identity, 0, len(r.sessions))
	for identity := range r.sessions {
		identities = append(identities, identity)
	}
	sort.Slice(identities, func(i, j int) bool { return identities[i] < identities[j] })
	return identities
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// emit runs outside the lock: listeners read the registry back.
func (r *Registry) emit(ctx context.Context, listener contract.PresenceListener, identity domain.Identity, status domain.Status) {
	if listener == nil {
		return
	}
	listener.OnPresence(ctx, event.Presence{Identity: identity, Status: status, At: time.Now().UTC()})
}
