package main

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerURL string        `envconfig:"CHATTERBOX_SERVER" default:"http://localhost:5000"`
	Username  string        `envconfig:"CHATTERBOX_USERNAME"`
	Password  string        `envconfig:"CHATTERBOX_PASSWORD"`
	Timeout   time.Duration `envconfig:"CHATTERBOX_TIMEOUT" default:"10s"`
	LogLevel  string        `envconfig:"CHATTERBOX_LOG_LEVEL" default:"WARN"`
	// CHATTERBOX_COLOURS disables colorized output when piping to a file
	Colours bool `envconfig:"CHATTERBOX_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// PushURL derives the websocket endpoint from the REST base URL.
func (c Config) PushURL() string {
	base := strings.TrimRight(c.ServerURL, "/")
	switch {
	case strings.HasPrefix(base, "https://"):
		base = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base + "/ws"
}
