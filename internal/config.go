package internal

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

const (
	StoreBadger = "badger"
	StoreMongo  = "mongo"
)

type Config struct {
	Port                 int           `env:"PORT,default=5000"`
	GrpcPort             int           `env:"GRPC_PORT,default=5001"`
	DebugPort            int           `env:"DEBUG_PORT,default=8081"`
	JwtSecret            string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,default=720h"`
	StoreDriver          string        `env:"STORE_DRIVER,default=badger"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,default=./data/badger"`
	MongoURI             string        `env:"MONGO_URI,default=mongodb://localhost:27017"`
	MongoDatabase        string        `env:"MONGO_DATABASE,default=chatterbox"`
	BlugeFilepath        string        `env:"BLUGE_FILEPATH,default=./data/bluge"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	BufferSize           int           `env:"BUFFER_SIZE,default=1024"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	MaxContentLength     int           `env:"MAX_CONTENT_LENGTH,default=2000"`
	LimitMessages        *int          `env:"LIMIT_MESSAGES"`
	SearchLimit          int           `env:"SEARCH_LIMIT,default=50"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=15s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	ClientURL            string        `env:"CLIENT_URL,default=*"`
	// CENSORED_DIR holds one <lang>.txt word list per language; empty disables moderation
	CensoredDir  string `env:"CENSORED_DIR"`
	CensoredChar string `env:"CENSORED_CHAR,default=*"`
}

// Load reads an optional .env file then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, err
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	if c.StoreDriver != StoreBadger && c.StoreDriver != StoreMongo {
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreBadger, StoreMongo, c.StoreDriver)
	}
	if c.MaxContentLength <= 0 {
		return fmt.Errorf("MAX_CONTENT_LENGTH must be positive, got %d", c.MaxContentLength)
	}
	if c.ConnectionBufferSize <= 0 || c.BufferSize <= 0 {
		return fmt.Errorf("BUFFER_SIZE and CONNECTION_BUFFER_SIZE must be positive")
	}
	if utf8.RuneCountInString(c.CensoredChar) != 1 {
		return fmt.Errorf("CENSORED_CHAR must be a single character, got %q", c.CensoredChar)
	}
	if c.LimitMessages != nil && *c.LimitMessages <= 0 {
		return fmt.Errorf("LIMIT_MESSAGES must be positive when set, got %d", *c.LimitMessages)
	}
	return nil
}

// Replacement is the rune masking censored words.
func (c Config) Replacement() rune {
	r, _ := utf8.DecodeRuneInString(c.CensoredChar)
	return r
}
