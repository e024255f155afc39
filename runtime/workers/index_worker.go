package workers

import (
	"chatterbox/contract"
	"chatterbox/domain"
	"context"
	"log/slog"
)

// IndexWorker feeds the search index with persisted messages.
// Indexing is asynchronous and best-effort: a failure is logged, the message
// stays in the durable store and simply cannot be found by search.
type IndexWorker struct {
	log     *slog.Logger
	indexer contract.MessageIndexer
	queue   <-chan domain.Message
}

func NewIndexWorker(log *slog.Logger, indexer contract.MessageIndexer, queue <-chan domain.Message) *IndexWorker {
	return &IndexWorker{log: log, indexer: indexer, queue: queue}
}

func (w *IndexWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping message indexing")
			return nil
		case message, ok := <-w.queue:
			if !ok {
				return nil
			}
			if err := w.indexer.Index(ctx, message); err != nil {
				w.log.Warn("Message not indexed", "id", message.ID, "error", err)
			}
		}
	}
}
