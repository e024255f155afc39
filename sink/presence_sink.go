package sink

import (
	"chatterbox/domain/event"
	"context"
	"sync/atomic"
)

// PresenceSink buffers presence transitions for one gRPC Watch stream.
// The gRPC handler takes it from there.
type PresenceSink struct {
	Events  chan event.Presence
	dropped atomic.Int64
}

func NewPresenceSink(bufferSize int) *PresenceSink {
	return &PresenceSink{Events: make(chan event.Presence, bufferSize)}
}

// OnPresence is called by the broadcaster under the dispatch lock, so it never waits.
func (s *PresenceSink) OnPresence(ctx context.Context, p event.Presence) {
	select {
	case s.Events <- p:
	case <-ctx.Done():
	default:
		// Backpressure: the watcher is too slow, the transition is lost for it
		s.dropped.Add(1)
	}
}

func (s *PresenceSink) Dropped() int64 {
	return s.dropped.Load()
}
