package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET, default=way-dev-secret"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	// StorageBackend selects where the state mirror lives: memory, mongo or redis.
	StorageBackend string `env:"STORAGE_BACKEND, default=memory"`
	// PersistQueue moves state writes to a background worker.
	PersistQueue   bool   `env:"PERSIST_QUEUE, default=false"`
	RechargeAmount int64  `env:"RECHARGE_AMOUNT, default=5000"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Assistant AssistantConfig
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI,        default=mongodb://localhost:27017"`
	Database   string `env:"MONGO_DB,         default=way"`
	Collection string `env:"MONGO_COLLECTION, default=way_state"`
}

// RedisConfig is used for the redis backend and, when Addr is set, for
// subscribe idempotency keys regardless of the backend.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,     default=0"`
	Prefix   string `env:"REDIS_PREFIX, default=way:"`
}

type AssistantConfig struct {
	APIKey  string        `env:"ASSISTANT_API_KEY"`
	BaseURL string        `env:"ASSISTANT_BASE_URL, default=https://generativelanguage.googleapis.com"`
	Model   string        `env:"ASSISTANT_MODEL,    default=gemini-1.5-flash"`
	Timeout time.Duration `env:"ASSISTANT_TIMEOUT,  default=20s"`
}

func (c *Config) IsProduction() bool { return c.Env == "production" }

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendMongo:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("config: STORAGE_BACKEND=redis requires REDIS_ADDR")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.RechargeAmount <= 0 {
		return fmt.Errorf("config: RECHARGE_AMOUNT must be positive, got %d", c.RechargeAmount)
	}
	if c.IsProduction() && c.JWTSecret == "way-dev-secret" {
		return fmt.Errorf("config: JWT_SECRET must be set in production")
	}
	return nil
}

// Process reads configuration from the given lookuper and validates it.
func Process(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := Process(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}
