package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=3600s"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string        `env:"CORS_ORIGIN, default=http://localhost:4200"`

	DB    DBConfig
	Redis RedisConfig
}

// DBConfig mirrors the deployment's historical variable names.
type DBConfig struct {
	Host     string `env:"DB_HOST,     default=mysql"`
	Port     string `env:"DB_PORT,     default=3306"`
	Database string `env:"DB_DATABASE, default=my_database"`
	Username string `env:"DB_USERNAME, default=appuser"`
	Password string `env:"DB_PASSWORD, default=apppass"`
}

// DSN renders the go-sql-driver connection string. parseTime makes the
// driver scan DATETIME columns into time.Time.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true",
		c.Username, c.Password, c.Host, c.Port, c.Database)
}

// RedisConfig is optional: an empty Addr disables the status cache.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
