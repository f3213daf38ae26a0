package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// PostgresCfg describes connection to postgres
type PostgresCfg struct {
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Database    string `env:"POSTGRES_DB"`
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	SslMode     string `env:"POSTGRES_SLL_MODE" envDefault:"disable"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

// DSN builds connection string accepted by pgxpool
func (c PostgresCfg) DSN() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%d dbname=%s sslmode=%s pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SslMode, c.PoolMaxConn,
	)
}

// LogCfg configures application logger
type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Config is application config
type Config struct {
	PostgresCfg PostgresCfg
	LogCfg      LogCfg
}

// Build reads config from environment
func Build() (*Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	return &cfg, nil
}
