package workers

import (
	"chatterbox/domain"
	"chatterbox/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIndexWorker_Indexes_Queued_Messages(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	indexer := mocks.NewMockMessageIndexer(ctrl)
	queue := make(chan domain.Message, 2)
	worker := NewIndexWorker(slog.Default(), indexer, queue)

	first := domain.Message{ID: "1", Content: "hello"}
	second := domain.Message{ID: "2", Content: "world"}
	indexed := make(chan string, 2)

	// Given a failing first indexation
	gomock.InOrder(
		indexer.EXPECT().Index(gomock.Any(), first).DoAndReturn(func(_ context.Context, m domain.Message) error {
			indexed <- m.ID
			return fmt.Errorf("disk full")
		}),
		indexer.EXPECT().Index(gomock.Any(), second).DoAndReturn(func(_ context.Context, m domain.Message) error {
			indexed <- m.ID
			return nil
		}),
	)

	queue <- first
	queue <- second
	close(queue)

	// Then the worker keeps going and stops once the queue is closed
	req.NoError(worker.Run(context.Background()))
	req.Equal("1", <-indexed)
	req.Equal("2", <-indexed)
}

func TestIndexWorker_Stops_On_Context_Cancel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	worker := NewIndexWorker(slog.Default(), mocks.NewMockMessageIndexer(ctrl), make(chan domain.Message))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- worker.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("worker should stop when the context is canceled")
	}
}
