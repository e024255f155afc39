package e2e

import (
	"chatterbox/client"
	presenceclient "chatterbox/infrastructure/grpc/client"
	pb "chatterbox/proto/presence"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type BaseSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ServerURL == "" {
		s.T().Skip("E2E_SERVER_URL not set")
	}
}

// Step prints a colorized header for a scenario step.
func (s *BaseSuite) Step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// Register creates a throwaway account and returns its session.
func (s *BaseSuite) Register(ctx context.Context, prefix string) (*client.APIClient, client.Session) {
	api := client.NewAPIClient(s.Config.ServerURL, 10*time.Second)
	username := prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	session, err := api.Register(ctx, username, "Passw0rd!e2e")
	s.Require().NoError(err, "register %s", username)
	api.SetToken(session.Token)
	return api, session
}

// PushURL derives the websocket endpoint from the server URL.
func (s *BaseSuite) PushURL() string {
	base := strings.TrimRight(s.Config.ServerURL, "/")
	return "ws" + strings.TrimPrefix(base, "http") + "/ws"
}

// GrpcConn initializes a gRPC connection with logging, colors, and JSON debugging
func (s *BaseSuite) GrpcConn(t *testing.T, name string) *grpc.ClientConn {
	s.Step(t, name)

	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	conn, err := grpc.NewClient(s.Config.GrpcAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+s.Config.GrpcAddr)
	return conn
}

// WithPresence provides a presence client authenticated with token within a contextual test step
func (s *BaseSuite) WithPresence(name, token string, fn func(ctx context.Context, client *presenceclient.PresenceClient)) {
	conn := s.GrpcConn(s.T(), name)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fn(ctx, presenceclient.NewPresenceClient(pb.NewPresenceServiceClient(conn), token))
}
