package runtime

import (
	"chatterbox/contract"
	"chatterbox/domain"
	"chatterbox/domain/event"
	"context"
	"log/slog"
)

// EventRouter unicasts ephemeral events to the single channel of one identity.
// An unknown receiver drops the event silently: the sender is never told.
type EventRouter struct {
	log      *slog.Logger
	registry contract.IRegistry
}

func NewEventRouter(log *slog.Logger, registry contract.IRegistry) *EventRouter {
	return &EventRouter{log: log, registry: registry}
}

// Route reports whether env was handed to the receiver's channel.
func (r *EventRouter) Route(ctx context.Context, receiver domain.Identity, env event.Envelope) bool {
	ch, ok := r.registry.Lookup(receiver)
	if !ok {
		r.log.Debug("Receiver offline, event dropped", "event", env.Event, "receiver", receiver)
		return false
	}
	if err := ch.Deliver(ctx, env); err != nil {
		r.log.Debug("Event not delivered", "event", env.Event, "receiver", receiver, "error", err)
		return false
	}
	return true
}

func (r *EventRouter) Typing(ctx context.Context, sender, receiver domain.Identity) bool {
	return r.forward(ctx, event.Typing, receiver, event.TypingPayload{SenderID: sender})
}

func (r *EventRouter) StopTyping(ctx context.Context, sender, receiver domain.Identity) bool {
	return r.forward(ctx, event.StopTyping, receiver, event.TypingPayload{SenderID: sender})
}

// Notify forwards a new message notification. It carries no ID and is never stored.
func (r *EventRouter) Notify(ctx context.Context, sender, receiver domain.Identity, content string) bool {
	return r.forward(ctx, event.NewMessage, receiver, event.NewMessagePayload{SenderID: sender, Content: content})
}

func (r *EventRouter) forward(ctx context.Context, name event.Name, receiver domain.Identity, payload any) bool {
	env, err := event.NewEnvelope(name, payload)
	if err != nil {
		r.log.Error("Unable to encode event", "event", name, "error", err)
		return false
	}
	return r.Route(ctx, receiver, env)
}
