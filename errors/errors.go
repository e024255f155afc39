package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("invalid password")
	ErrInvalidUsername    = fmt.Errorf("invalid username")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrUnauthorized       = fmt.Errorf("not authorized")
	ErrEmptyContent       = fmt.Errorf("message content is empty")
	ErrContentTooLong     = fmt.Errorf("message content is too long")
	ErrSelfConversation   = fmt.Errorf("cannot open a conversation with yourself")
	ErrChannelClosed      = fmt.Errorf("channel closed")
	ErrChannelFull        = fmt.Errorf("channel buffer full")
	ErrIndexUnavailable   = fmt.Errorf("search index unavailable")
	ErrEmptyWords         = fmt.Errorf("censored dictionary is empty")
	ErrInvalidHash        = fmt.Errorf("invalid password hash")
)

// MapToHTTPStatus translates a service error into the status returned by the REST API.
func MapToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stdErrors.Is(err, ErrUserAlreadyExists),
		stdErrors.Is(err, ErrInvalidPassword),
		stdErrors.Is(err, ErrInvalidUsername),
		stdErrors.Is(err, ErrEmptyContent),
		stdErrors.Is(err, ErrContentTooLong),
		stdErrors.Is(err, ErrSelfConversation):
		return http.StatusBadRequest
	case stdErrors.Is(err, ErrInvalidCredentials), stdErrors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case stdErrors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case stdErrors.Is(err, ErrIndexUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// MapToGRPCError wraps a service error into a gRPC status.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case stdErrors.Is(err, ErrInvalidCredentials), stdErrors.Is(err, ErrUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case stdErrors.Is(err, ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())
	case stdErrors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case stdErrors.Is(err, ErrInvalidPassword), stdErrors.Is(err, ErrInvalidUsername),
		stdErrors.Is(err, ErrEmptyContent), stdErrors.Is(err, ErrContentTooLong):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
