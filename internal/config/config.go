package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	DND5E   DND5EConfig
	Logging LoggingConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration.
// An empty URL keeps characters in memory.
type RedisConfig struct {
	URL         string        `env:"REDIS_URL"`
	PingTimeout time.Duration `env:"REDIS_PING_TIMEOUT" envDefault:"5s"`
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	Timeout time.Duration `env:"DND5E_API_TIMEOUT" envDefault:"30s"`
}

// LoggingConfig selects the zap logger built at startup
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields the bot cannot start without
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return dnderr.InvalidArgument("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return dnderr.InvalidArgument("DISCORD_APP_ID is required")
	}
	if c.DND5E.Timeout <= 0 {
		return dnderr.InvalidArgumentf("DND5E_API_TIMEOUT must be positive, got %s", c.DND5E.Timeout)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return dnderr.InvalidArgumentf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
