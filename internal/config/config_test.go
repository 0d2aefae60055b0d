package config_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/dnd-dice-bot/internal/config"
	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Discord.Token)
	assert.Empty(t, cfg.Discord.GuildID)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 5*time.Second, cfg.Redis.PingTimeout)
	assert.Equal(t, 30*time.Second, cfg.DND5E.Timeout)
	assert.Equal(t, config.LoggingConfig{Level: "info", Format: "json"}, cfg.Logging)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
	t.Setenv("DISCORD_GUILD_ID", "guild")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("DND5E_API_TIMEOUT", "2s")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "guild", cfg.Discord.GuildID)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, 2*time.Second, cfg.DND5E.Timeout)
	assert.Equal(t, config.LoggingConfig{Level: "debug", Format: "console"}, cfg.Logging)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "app")

	_, err := config.Load()
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
	t.Setenv("DND5E_API_TIMEOUT", "soon")

	_, err := config.Load()
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		Discord: config.DiscordConfig{Token: "token", AppID: "app"},
		DND5E:   config.DND5EConfig{Timeout: time.Second},
		Logging: config.LoggingConfig{Level: "info", Format: "json"},
	}
	require.NoError(t, valid.Validate())

	noApp := valid
	noApp.Discord.AppID = ""
	assert.Error(t, noApp.Validate())

	xml := valid
	xml.Logging.Format = "xml"
	assert.Error(t, xml.Validate())

	zero := valid
	zero.DND5E.Timeout = 0
	assert.Error(t, zero.Validate())
}
