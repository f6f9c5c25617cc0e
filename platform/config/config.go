// Package config reads process settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"fmt"
	"time"

	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

type Config struct {
	HTTPAddr    string   `env:"HTTP_ADDR" envDefault:":4101"`
	SocketAddr  string   `env:"SOCKET_ADDR" envDefault:":8000"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// StorageTimeout bounds each load and save a room makes.
	StorageTimeout time.Duration `env:"STORAGE_TIMEOUT" envDefault:"5s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	DB    Database
	Redis Redis

	// Game holds the defaults applied to new sessions.
	Game models.Config
}

type Database struct {
	Dialect    string `env:"DB_DIALECT" envDefault:"sqlite"`
	SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"tmp/monopoly.sqlite"`
	User       string `env:"DB_USER"`
	Addr       string `env:"DB_ADDR"`
	Password   string `env:"DB_PASSWORD"`
	Name       string `env:"DB_NAME"`
}

type Redis struct {
	URL string        `env:"REDIS_URL"`
	TTL time.Duration `env:"CACHE_TTL" envDefault:"1h"`
}

// Load parses the environment on top of the built-in game defaults.
func Load() (Config, error) {
	cfg := Config{Game: models.DefaultConfig()}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.DB.Dialect {
	case DialectSQLite, DialectPostgres:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DIALECT %q", cfg.DB.Dialect)
	}
	return cfg, nil
}
