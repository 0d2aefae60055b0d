package services

import (
	"github.com/KirkDiggler/dnd-dice-bot/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-dice-bot/internal/dice"
	"github.com/KirkDiggler/dnd-dice-bot/internal/repositories/characters"
	characterService "github.com/KirkDiggler/dnd-dice-bot/internal/services/character"
	rollService "github.com/KirkDiggler/dnd-dice-bot/internal/services/roll"
	"go.uber.org/zap"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	RollService      rollService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	DNDClient           dnd5e.Client
	CharacterRepository characters.Repository
	Roller              dice.Roller
	Logger              *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository(nil)
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewLoggedRoller(dice.NewRandomRoller(), logger)
	}

	return &Provider{
		CharacterService: characterService.NewService(&characterService.ServiceConfig{
			Repository: charRepo,
			Logger:     logger,
		}),
		RollService: rollService.NewService(&rollService.ServiceConfig{
			Repository: charRepo,
			DNDClient:  cfg.DNDClient,
			Roller:     roller,
			Logger:     logger,
		}),
	}
}
