package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	API     APIConfig
	Session SessionConfig
	Server  ServerConfig
	Log     LogConfig
}

// APIConfig locates the admin REST API. The base URL is read once at startup.
type APIConfig struct {
	BaseURL string `env:"ADMIN_API_BASE_URL" envDefault:"http://localhost:8080"`
}

type SessionConfig struct {
	JWTSecret string        `env:"SESSION_JWT_SECRET" envDefault:"dev-admin-secret"`
	TTL       time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	// RedisAddr selects the redis token store; empty keeps tokens in memory.
	RedisAddr     string `env:"SESSION_REDIS_ADDR" envDefault:""`
	RedisPassword string `env:"SESSION_REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"SESSION_REDIS_DB" envDefault:"0"`
}

// ServerConfig is only used by the stub backend.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequireAuth     bool          `env:"SERVER_REQUIRE_AUTH" envDefault:"false"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// SlogLevel maps Level onto a slog level; unknown names fall back to info.
func (c LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: ADMIN_API_BASE_URL %q is not an absolute http(s) URL", ErrInvalid, c.API.BaseURL)
	}
	if c.Session.JWTSecret == "" {
		return fmt.Errorf("%w: SESSION_JWT_SECRET is empty", ErrInvalid)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("%w: SESSION_TTL must be positive", ErrInvalid)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: SERVER_PORT %d out of range", ErrInvalid, c.Server.Port)
	}
	return nil
}
