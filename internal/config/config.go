package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string        `env:"RUN_ADDRESS" envDefault:":8080"`
	DatabaseURI        string        `env:"DATABASE_URI"`
	AuthSecret         string        `env:"AUTH_SECRET" envDefault:"change-me-in-production"`
	AuthSecretFile     string        `env:"AUTH_SECRET_FILE"`
	AuthStrategy       string        `env:"AUTH_STRATEGY" envDefault:"jwt"`
	TokenTTL           time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	InitialBalance     int64         `env:"INITIAL_BALANCE" envDefault:"0"`
	BcryptCost         int           `env:"BCRYPT_COST" envDefault:"0"`
	SearchPageSize     int           `env:"SEARCH_PAGE_SIZE" envDefault:"10"`
	SearchMaxPageSize  int           `env:"SEARCH_MAX_PAGE_SIZE" envDefault:"100"`
	RedisAddress       string        `env:"REDIS_ADDRESS"`
	SearchCacheTTL     time.Duration `env:"SEARCH_CACHE_TTL" envDefault:"30s"`
	KafkaBrokers       []string      `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic         string        `env:"KAFKA_TOPIC" envDefault:"purchases"`
	EventPollInterval  time.Duration `env:"EVENT_POLL_INTERVAL" envDefault:"2s"`
	EventBatchSize     int           `env:"EVENT_BATCH_SIZE" envDefault:"32"`
	WorkerPoolSize     int           `env:"WORKER_POOL_SIZE" envDefault:"4"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
}

const (
	defaultTokenTTL          = 24 * time.Hour
	defaultSearchPageSize    = 10
	defaultSearchMaxPageSize = 100
	defaultSearchCacheTTL    = 30 * time.Second
	defaultEventPollInterval = 2 * time.Second
	defaultEventBatchSize    = 32
	defaultWorkerPoolSize    = 4
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from a .env file, environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], env.ToMap(os.Environ()))
}

func load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("foodmarket", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.EventPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		tokenTTLStr        = cfg.TokenTTL.String()
		kafkaBrokersStr    = strings.Join(cfg.KafkaBrokers, ",")
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for the search cache")
	fs.StringVar(&kafkaBrokersStr, "kafka", kafkaBrokersStr, "Comma separated Kafka brokers")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.AuthStrategy, "auth-strategy", cfg.AuthStrategy, "Token strategy: jwt or hmac")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Lifetime of issued tokens")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent event publishers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between outbox polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.EventBatchSize, "poll-batch", cfg.EventBatchSize, "Maximum events per polling batch")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.EventPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	cfg.KafkaBrokers = splitList(kafkaBrokersStr)

	if cfg.AuthSecretFile != "" {
		content, err := os.ReadFile(cfg.AuthSecretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = strings.TrimSpace(string(content))
	}

	normalize(cfg)

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.AuthStrategy != "jwt" && cfg.AuthStrategy != "hmac" {
		return nil, fmt.Errorf("unknown auth strategy %q", cfg.AuthStrategy)
	}

	return cfg, nil
}

func normalize(cfg *Config) {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}
	if cfg.EventBatchSize <= 0 {
		cfg.EventBatchSize = defaultEventBatchSize
	}
	if cfg.EventPollInterval <= 0 {
		cfg.EventPollInterval = defaultEventPollInterval
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	if cfg.SearchPageSize <= 0 {
		cfg.SearchPageSize = defaultSearchPageSize
	}
	if cfg.SearchMaxPageSize <= 0 {
		cfg.SearchMaxPageSize = defaultSearchMaxPageSize
	}
	if cfg.SearchPageSize > cfg.SearchMaxPageSize {
		cfg.SearchPageSize = cfg.SearchMaxPageSize
	}
	if cfg.SearchCacheTTL <= 0 {
		cfg.SearchCacheTTL = defaultSearchCacheTTL
	}
	if cfg.InitialBalance < 0 {
		cfg.InitialBalance = 0
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
