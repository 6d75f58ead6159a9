package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr        string        `env:"STRATEGO_HTTP_ADDR"         envDefault:":3000"`
	AllowedOrigins  []string      `env:"STRATEGO_ALLOWED_ORIGINS"   envDefault:"http://localhost:3001" envSeparator:","`
	StaticDir       string        `env:"STRATEGO_STATIC_DIR"        envDefault:"client/build"`
	LobbyIDLength   int           `env:"STRATEGO_LOBBY_ID_LENGTH"   envDefault:"6"`
	SendBuffer      int           `env:"STRATEGO_SEND_BUFFER"       envDefault:"64"`
	ShutdownTimeout time.Duration `env:"STRATEGO_SHUTDOWN_TIMEOUT"  envDefault:"5s"`
	Logging         LoggingConfig
}

type LoggingConfig struct {
	Level  string `env:"STRATEGO_LOG_LEVEL"  envDefault:"info"`
	Format string `env:"STRATEGO_LOG_FORMAT" envDefault:"console"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.LobbyIDLength < 4 {
		return Config{}, fmt.Errorf("STRATEGO_LOBBY_ID_LENGTH must be at least 4, got %d", cfg.LobbyIDLength)
	}
	if cfg.SendBuffer <= 0 {
		return Config{}, fmt.Errorf("STRATEGO_SEND_BUFFER must be positive, got %d", cfg.SendBuffer)
	}
	return cfg, nil
}
