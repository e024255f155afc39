// Package e2e runs scenarios against a live server. Every suite is skipped
// unless E2E_SERVER_URL is set.
package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerURL string `envconfig:"E2E_SERVER_URL"`
	GrpcAddr  string `envconfig:"E2E_GRPC_ADDR" default:"localhost:5001"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
