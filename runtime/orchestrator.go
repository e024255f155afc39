// Package runtime handles presence, event propagation and the relay between live connections.
// It orchestrates the system without containing business logic or domain rules.
package runtime

import (
	"chatterbox/contract"
	"chatterbox/domain"
	"chatterbox/domain/event"
	"context"
	"log/slog"
	"sync"
)

// Orchestrator owns the connection lifecycle of the push channel.
// Every step (join, typing, send, disconnect, snapshot) runs under one dispatch
// lock, so a registry mutation and its presence fan-out, or a lookup and its
// delivery, never interleave with another step.
type Orchestrator struct {
	mu          sync.Mutex
	log         *slog.Logger
	supervisor  contract.ISupervisor
	registry    *Registry
	broadcaster *PresenceBroadcaster
	router      contract.IRouter
	workers     []contract.Worker
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry *Registry, workers ...contract.Worker) *Orchestrator {
	broadcaster := NewPresenceBroadcaster(log, registry)
	registry.SetListener(broadcaster)
	return &Orchestrator{
		log:         log,
		supervisor:  supervisor,
		registry:    registry,
		broadcaster: broadcaster,
		router:      NewEventRouter(log, registry),
		workers:     workers,
	}
}

// Join registers ch as the active channel of identity.
// Everyone connected, ch included, is told identity is online.
func (o *Orchestrator) Join(ctx context.Context, identity domain.Identity, ch contract.Channel) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.log.Debug("Participant joined", "identity", identity, "channel", ch.ID())
	o.registry.Register(ctx, identity, ch)
}

// Leave is called when a channel is lost.
func (o *Orchestrator) Leave(ctx context.Context, ch contract.Channel) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	left := o.registry.Unregister(ctx, ch)
	if left {
		o.log.Debug("Participant left", "channel", ch.ID())
	}
	return left
}

func (o *Orchestrator) Typing(ctx context.Context, p event.TypingPayload) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.router.Typing(ctx, p.SenderID, p.ReceiverID)
}

func (o *Orchestrator) StopTyping(ctx context.Context, p event.TypingPayload) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.router.StopTyping(ctx, p.SenderID, p.ReceiverID)
}

// SendMessage relays a newMessage notification to the receiver.
// Persistence already happened through the REST API.
func (o *Orchestrator) SendMessage(ctx context.Context, p event.SendMessagePayload) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.router.Notify(ctx, p.SenderID, p.ReceiverID, p.Content)
}

// Snapshot answers the requester only with the identities currently online.
func (o *Orchestrator) Snapshot(ctx context.Context, ch contract.Channel) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	env, err := event.NewEnvelope(event.PresenceSnapshot, event.SnapshotPayload{UserIDs: o.registry.Online()})
	if err != nil {
		return err
	}
	return ch.Deliver(ctx, env)
}

func (o *Orchestrator) Online() []domain.Identity {
	return o.registry.Online()
}

func (o *Orchestrator) Connections() int {
	return o.registry.Len()
}

// Observe subscribes a listener to every presence transition, e.g. a gRPC watch stream.
func (o *Orchestrator) Observe(l contract.PresenceListener) func() {
	return o.broadcaster.Observe(l)
}

// Start registers the background workers and blocks while the supervisor runs them.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	o.supervisor.Add(o.workers...)
	o.mu.Unlock()

	o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) Stop() {
	o.supervisor.Stop()
}
