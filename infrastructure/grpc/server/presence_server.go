package server

import (
	"chatterbox/auth"
	"chatterbox/contract"
	"chatterbox/domain"
	"chatterbox/domain/event"
	"chatterbox/errors"
	pb "chatterbox/proto/presence"
	"chatterbox/sink"
	"context"
	"log/slog"
	"time"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type PresenceServer struct {
	pb.UnimplementedPresenceServiceServer
	log          *slog.Logger
	orchestrator contract.IOrchestrator
	bufferSize   int
}

func NewPresenceServer(log *slog.Logger, orchestrator contract.IOrchestrator, bufferSize int) *PresenceServer {
	return &PresenceServer{log: log, orchestrator: orchestrator, bufferSize: bufferSize}
}

// NewGrpcServer builds the gRPC server with logging and bearer authentication on every call.
func NewGrpcServer(log *slog.Logger, issuer *auth.TokenIssuer, presence *PresenceServer) *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(log),
			auth.UnaryInterceptor(issuer),
		),
		grpc.ChainStreamInterceptor(auth.StreamInterceptor(issuer)),
	)
	pb.RegisterPresenceServiceServer(s, presence)
	return s
}

func (s *PresenceServer) ListOnline(_ context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	ids := lo.Map(s.orchestrator.Online(), func(id domain.Identity, _ int) any {
		return id.String()
	})
	list, err := structpb.NewList(ids)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return list, nil
}

// Watch streams every presence transition until the client goes away.
// A watcher slower than its buffer misses transitions rather than slowing the relay.
func (s *PresenceServer) Watch(_ *emptypb.Empty, stream pb.PresenceService_WatchServer) error {
	presenceSink := sink.NewPresenceSink(s.bufferSize)
	cancel := s.orchestrator.Observe(presenceSink)
	defer cancel()

	caller, _ := auth.UserIDFromContext(stream.Context())
	s.log.Debug("Presence watcher connected", "caller", caller)

	for {
		select {
		case <-stream.Context().Done():
			s.log.Debug("Presence watcher disconnected", "caller", caller, "dropped", presenceSink.Dropped())
			return nil
		case p := <-presenceSink.Events:
			msg, err := toPresenceStruct(p)
			if err != nil {
				return errors.MapToGRPCError(err)
			}
			if err := stream.Send(msg); err != nil {
				s.log.Error("failed to push presence to stream", "caller", caller, "error", err)
				return err
			}
		}
	}
}

func toPresenceStruct(p event.Presence) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"userId": p.Identity.String(),
		"status": string(p.Status),
		"at":     p.At.UTC().Format(time.RFC3339Nano),
	})
}
