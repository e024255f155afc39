package auth

import (
	"context"

	"chatterbox/domain"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// UnaryInterceptor handles JWT validation for incoming unary gRPC calls.
func UnaryInterceptor(issuer *TokenIssuer) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		newCtx, err := authenticate(ctx, issuer)
		if err != nil {
			return nil, err
		}
		return handler(newCtx, req)
	}
}

// StreamInterceptor is the streaming counterpart of UnaryInterceptor.
func StreamInterceptor(issuer *TokenIssuer) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		newCtx, err := authenticate(ss.Context(), issuer)
		if err != nil {
			return err
		}
		return handler(srv, &authenticatedStream{ServerStream: ss, ctx: newCtx})
	}
}

func authenticate(ctx context.Context, issuer *TokenIssuer) (context.Context, error) {
	// 1. Extract metadata (headers) from the incoming gRPC context
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}

	// 2. Retrieve the Authorization header, expecting "Bearer <token>"
	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}
	tokenStr, ok := BearerToken(values[0])
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authorization token is malformed")
	}

	// 3. Validate the JWT and inject the identity for downstream layers
	claims, err := issuer.ValidateToken(tokenStr)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}
	return WithUserID(ctx, domain.Identity(claims.UserID)), nil
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context {
	return s.ctx
}
