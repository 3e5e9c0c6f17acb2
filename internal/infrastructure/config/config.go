package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,         default=3001"`
	Env         string `env:"ENV,          default=development"`
	JWTSecret   string `env:"JWT_SECRET,   required"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000"`
	UploadsDir  string `env:"UPLOADS_DIR,  default=uploads"`

	Postgres PostgresConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	URL      string `env:"DATABASE_URL,     required"`
	MaxConns int32  `env:"DB_MAX_CONNS,     default=10"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables. JWT_SECRET and
// DATABASE_URL are hard requirements: missing either is a startup failure,
// never a per-request one.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
