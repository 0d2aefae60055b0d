package roll

//go:generate mockgen -destination=mock/mock_service.go -package=mockroll -source=service.go

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-dice-bot/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-dice-bot/internal/dice"
	"github.com/KirkDiggler/dnd-dice-bot/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
	"github.com/KirkDiggler/dnd-dice-bot/internal/formula"
	"github.com/KirkDiggler/dnd-dice-bot/internal/repositories/characters"
	"go.uber.org/zap"
)

// constitution is the attribute added to hit die rolls when the character has it
const constitution = "Constitution"

// Service evaluates dice formulas for chat users
type Service interface {
	// Roll evaluates a free-text formula as the user's active character
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// RollThrow evaluates a formula saved on the user's active character
	RollThrow(ctx context.Context, input *RollThrowInput) (*RollOutput, error)

	// RollHitDie rolls the hit die of a 5e class
	RollHitDie(ctx context.Context, input *RollHitDieInput) (*RollOutput, error)
}

type RollInput struct {
	UserID      string
	DisplayName string
	Formula     string
}

type RollThrowInput struct {
	UserID      string
	DisplayName string
	Name        string
}

type RollHitDieInput struct {
	UserID      string
	DisplayName string
	ClassKey    string
}

// RollOutput is the evaluated roll along with the formula that produced it
type RollOutput struct {
	Formula string
	Outcome *formula.Outcome
}

type service struct {
	repository characters.Repository
	dndClient  dnd5e.Client
	roller     dice.Roller
	logger     *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository characters.Repository // Required
	DNDClient  dnd5e.Client          // Required for RollHitDie
	Roller     dice.Roller
	Logger     *zap.Logger
}

// NewService creates a new roll service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	return &service{
		repository: cfg.Repository,
		dndClient:  cfg.DNDClient,
		roller:     roller,
		logger:     logger.Named("roll"),
	}
}

// Shortcut builds the formula behind the /rollN commands: a single die of the
// given size followed by whatever the user typed.
func Shortcut(faces int, extra string) string {
	return strings.TrimSpace(fmt.Sprintf("d%d %s", faces, strings.TrimSpace(extra)))
}

func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	return s.evaluate(input.Formula, s.activeCharacter(ctx, input.UserID), formula.Identity{
		UserID:      input.UserID,
		DisplayName: input.DisplayName,
	})
}

func (s *service) RollThrow(ctx context.Context, input *RollThrowInput) (*RollOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, dnderr.InvalidArgument("user ID is required")
	}

	char, err := s.repository.GetActiveByOwner(ctx, input.UserID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get active character")
	}

	throw := char.Throw(input.Name)
	if throw == nil {
		return nil, dnderr.NotFoundf("%s has no throw named '%s'", char.Name, input.Name).
			WithMeta("throw", input.Name)
	}

	return s.evaluate(throw.Formula, char, formula.Identity{
		UserID:      input.UserID,
		DisplayName: input.DisplayName,
	})
}

func (s *service) RollHitDie(ctx context.Context, input *RollHitDieInput) (*RollOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if s.dndClient == nil {
		return nil, dnderr.New(dnderr.CodeUnavailable, "rules reference is not configured")
	}

	class, err := s.dndClient.GetClass(input.ClassKey)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to look up class")
	}

	char := s.activeCharacter(ctx, input.UserID)

	parts := []string{fmt.Sprintf("1d%d", class.HitDie)}
	if char.AttributeByName(constitution) != nil {
		parts = append(parts, "&"+constitution)
	}
	parts = append(parts, strings.ReplaceAll(class.Name, " ", "_"))

	return s.evaluate(strings.Join(parts, " "), char, formula.Identity{
		UserID:      input.UserID,
		DisplayName: input.DisplayName,
	})
}

// activeCharacter returns the user's active character, or nil when there is none.
// Store failures degrade to rolling without attributes.
func (s *service) activeCharacter(ctx context.Context, userID string) *entities.Character {
	if userID == "" {
		return nil
	}

	char, err := s.repository.GetActiveByOwner(ctx, userID)
	if err != nil {
		if !dnderr.IsNotFound(err) {
			s.logger.Warn("rolling without character",
				zap.String("user_id", userID),
				zap.Error(err))
		}
		return nil
	}
	return char
}

func (s *service) evaluate(raw string, char *entities.Character, identity formula.Identity) (*RollOutput, error) {
	cfg := &formula.SessionConfig{
		Formula:  raw,
		Identity: identity,
		Roller:   s.roller,
	}
	// a nil *Character must not become a non-nil interface
	if char != nil {
		cfg.Character = char
	}

	outcome, err := formula.NewSession(cfg).Roll()
	if err != nil {
		return nil, err
	}

	s.logger.Debug("formula rolled",
		zap.String("user_id", identity.UserID),
		zap.String("formula", raw),
		zap.Int("result", outcome.Result))

	return &RollOutput{
		Formula: raw,
		Outcome: outcome,
	}, nil
}
