package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dnd-dice-bot/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-dice-bot/internal/config"
	"github.com/KirkDiggler/dnd-dice-bot/internal/handlers/discord"
	"github.com/KirkDiggler/dnd-dice-bot/internal/observability"
	"github.com/KirkDiggler/dnd-dice-bot/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-dice-bot/internal/services"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("no .env file found")
	}

	logger.Info("starting dice bot",
		zap.String("app_id", cfg.Discord.AppID),
		zap.String("guild_id", cfg.Discord.GuildID))

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.Fatal("failed to create Discord session", zap.Error(err))
	}

	// Create D&D 5e API client
	dndClient, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{
			Timeout: cfg.DND5E.Timeout,
		},
	})
	if err != nil {
		logger.Fatal("failed to create D&D 5e client", zap.Error(err))
	}

	providerConfig := &services.ProviderConfig{
		DNDClient: dndClient,
		Logger:    logger,
	}

	redisClient := connectRedis(cfg.Redis, logger)
	if redisClient != nil {
		providerConfig.CharacterRepository = characters.NewRedis(redisClient)
	}

	serviceProvider := services.NewProvider(providerConfig)

	// Hit die choices come from the 5e API, the handler falls back to the SRD list
	classes, err := dndClient.ListClasses()
	if err != nil {
		logger.Warn("failed to list classes", zap.Error(err))
	}

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
		Classes:         classes,
		Logger:          logger,
	})

	dg.AddHandler(discord.RecoverMiddleware(logger, "interaction", handler.HandleInteraction))

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		logger.Error("failed to open Discord connection", zap.Error(err))
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			logger.Warn("failed to close Discord connection", zap.Error(clientErr))
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		logger.Error("failed to register commands", zap.Error(err))
		return
	}

	if cfg.Discord.GuildID != "" {
		logger.Info("registered guild commands", zap.String("guild_id", cfg.Discord.GuildID))
	} else {
		logger.Info("registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info("shutting down")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("error closing Redis connection", zap.Error(err))
		}
	}
}

// connectRedis returns nil when Redis is not configured or unreachable, in
// which case characters are kept in memory.
func connectRedis(cfg config.RedisConfig, logger *zap.Logger) *redis.Client {
	if cfg.URL == "" {
		logger.Info("no REDIS_URL found, using in-memory repositories")
		return nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		logger.Warn("failed to parse Redis URL, falling back to in-memory repositories", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("failed to connect to Redis, falling back to in-memory repositories",
			zap.String("addr", opts.Addr), zap.Error(err))
		_ = client.Close()
		return nil
	}

	logger.Info("using Redis for persistence", zap.String("addr", opts.Addr))
	return client
}
