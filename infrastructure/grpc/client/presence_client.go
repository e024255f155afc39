package client

import (
	"chatterbox/domain"
	"chatterbox/domain/event"
	pb "chatterbox/proto/presence"
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// PresenceClient wraps the presence service with the bearer credential of an operator.
type PresenceClient struct {
	Client pb.PresenceServiceClient
	token  string
}

func NewPresenceClient(client pb.PresenceServiceClient, token string) *PresenceClient {
	return &PresenceClient{Client: client, token: token}
}

func (c *PresenceClient) withToken(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}

func (c *PresenceClient) ListOnline(ctx context.Context) ([]domain.Identity, error) {
	list, err := c.Client.ListOnline(c.withToken(ctx), &emptypb.Empty{})
	if err != nil {
		return nil, err
	}
	return lo.Map(list.GetValues(), func(v *structpb.Value, _ int) domain.Identity {
		return domain.Identity(v.GetStringValue())
	}), nil
}

// Watch calls fn for every transition until ctx is done or the stream breaks.
func (c *PresenceClient) Watch(ctx context.Context, fn func(event.Presence)) error {
	stream, err := c.Client.Watch(c.withToken(ctx), &emptypb.Empty{})
	if err != nil {
		return err
	}
	for {
		msg, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		p, err := fromPresenceStruct(msg)
		if err != nil {
			return err
		}
		fn(p)
	}
}

func fromPresenceStruct(msg *structpb.Struct) (event.Presence, error) {
	fields := msg.GetFields()
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return event.Presence{}, fmt.Errorf("presence timestamp: %w", err)
	}
	return event.Presence{
		Identity: domain.Identity(fields["userId"].GetStringValue()),
		Status:   domain.Status(fields["status"].GetStringValue()),
		At:       at,
	}, nil
}
