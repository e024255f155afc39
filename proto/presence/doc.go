// Package presence holds the gRPC bindings of presence.proto.
// The service only carries well-known types, so the binding is the whole package.
package presence

//go:generate protoc --go-grpc_out=. --go-grpc_opt=paths=source_relative presence.proto
