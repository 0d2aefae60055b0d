package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"strings"

	"github.com/KirkDiggler/dnd-dice-bot/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
	"github.com/KirkDiggler/dnd-dice-bot/internal/formula"
	"github.com/KirkDiggler/dnd-dice-bot/internal/repositories/characters"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxNameLength = 32

// Service manages the characters users roll as
type Service interface {
	// Create creates a character; the owner's first character becomes active
	Create(ctx context.Context, input *CreateInput) (*entities.Character, error)

	// SetActive makes the named character the one the owner rolls as
	SetActive(ctx context.Context, input *SetActiveInput) (*entities.Character, error)

	// GetActive returns the owner's active character
	GetActive(ctx context.Context, ownerID string) (*entities.Character, error)

	// List returns all characters of the owner
	List(ctx context.Context, ownerID string) ([]*entities.Character, error)

	// SetAttribute adds or replaces an attribute of the active character
	SetAttribute(ctx context.Context, input *SetAttributeInput) (*entities.Character, error)

	// SaveThrow adds or replaces a named formula of the active character
	SaveThrow(ctx context.Context, input *SaveThrowInput) (*entities.Character, error)
}

type CreateInput struct {
	OwnerID string
	Name    string
}

type SetActiveInput struct {
	OwnerID string
	Name    string
}

type SetAttributeInput struct {
	OwnerID string
	Name    string
	Alias   string
	Value   int
}

type SaveThrowInput struct {
	OwnerID string
	Name    string
	Formula string
}

type service struct {
	repository characters.Repository
	logger     *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository characters.Repository // Required
	Logger     *zap.Logger
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		repository: cfg.Repository,
		logger:     logger.Named("character"),
	}
}

func (s *service) Create(ctx context.Context, input *CreateInput) (*entities.Character, error) {
	if input == nil || input.OwnerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > maxNameLength {
		return nil, dnderr.Validationf("character name must be 1-%d characters", maxNameLength).
			WithMeta("name", input.Name)
	}

	existing, err := s.repository.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list characters")
	}
	for _, char := range existing {
		if char.Name == name {
			return nil, dnderr.AlreadyExistsf("you already have a character named '%s'", name).
				WithMeta("name", name)
		}
	}

	char := &entities.Character{
		OwnerID: input.OwnerID,
		Name:    name,
		Active:  len(existing) == 0,
	}
	if err := s.repository.Create(ctx, char); err != nil {
		return nil, dnderr.Wrap(err, "failed to create character")
	}

	s.logger.Info("character created",
		zap.String("owner_id", char.OwnerID),
		zap.String("character_id", char.ID),
		zap.Bool("active", char.Active))

	return char, nil
}

// SetActive makes the named character the only active one of its owner.
// Previously active characters are deactivated first; on failure the applied
// updates are reverted.
func (s *service) SetActive(ctx context.Context, input *SetActiveInput) (*entities.Character, error) {
	if input == nil || input.OwnerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	chars, err := s.repository.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list characters")
	}
	if len(chars) == 0 {
		return nil, dnderr.NotFound("you have no characters yet").
			WithMeta("owner_id", input.OwnerID)
	}

	var target *entities.Character
	for _, char := range chars {
		if char.Name == input.Name {
			target = char
		}
	}
	if target == nil {
		return nil, dnderr.NotFoundf("you have no character named '%s'", input.Name).
			WithMeta("owner_id", input.OwnerID)
	}

	var previous []*entities.Character
	for _, char := range chars {
		if char != target && char.Active {
			previous = append(previous, char)
		}
	}

	// The target is activated only once every other character is inactive,
	// so a failure never leaves two active characters behind.
	if err := s.setActiveFlags(ctx, previous, false); err != nil {
		return nil, dnderr.Wrap(err, "failed to switch active character")
	}

	if !target.Active {
		target.Active = true
		if err := s.repository.Update(ctx, target); err != nil {
			target.Active = false
			s.restoreActive(ctx, previous, true)
			return nil, dnderr.Wrap(err, "failed to switch active character")
		}
	}

	s.logger.Info("active character changed",
		zap.String("owner_id", input.OwnerID),
		zap.String("character_id", target.ID))

	return target, nil
}

// setActiveFlags stores active on every given character concurrently. When an
// update fails, the ones that succeeded are reverted before returning.
func (s *service) setActiveFlags(ctx context.Context, chars []*entities.Character, active bool) error {
	applied := make([]bool, len(chars))

	g, gctx := errgroup.WithContext(ctx)
	for i, char := range chars {
		g.Go(func() error {
			char.Active = active
			if err := s.repository.Update(gctx, char); err != nil {
				char.Active = !active
				return err
			}
			applied[i] = true
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		return nil
	}

	var revert []*entities.Character
	for i, char := range chars {
		if applied[i] {
			revert = append(revert, char)
		}
	}
	s.restoreActive(ctx, revert, !active)
	return err
}

// restoreActive puts back the active flag of characters changed by a failed
// switch. It is best effort: failures are logged.
func (s *service) restoreActive(ctx context.Context, chars []*entities.Character, active bool) {
	for _, char := range chars {
		char.Active = active
		if err := s.repository.Update(ctx, char); err != nil {
			s.logger.Error("failed to restore active flag",
				zap.String("character_id", char.ID),
				zap.Bool("active", active),
				zap.Error(err))
		}
	}
}

func (s *service) GetActive(ctx context.Context, ownerID string) (*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	char, err := s.repository.GetActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get active character")
	}
	return char, nil
}

func (s *service) List(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	chars, err := s.repository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list characters")
	}
	return chars, nil
}

func (s *service) SetAttribute(ctx context.Context, input *SetAttributeInput) (*entities.Character, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if !formula.IsValidAttributeName(input.Name) {
		return nil, dnderr.Validationf("'%s' is not a usable attribute name", input.Name).
			WithMeta("name", input.Name)
	}
	if input.Alias != "" && !formula.IsValidAlias(input.Alias) {
		return nil, dnderr.Validationf("'%s' is not a usable alias", input.Alias).
			WithMeta("alias", input.Alias)
	}

	char, err := s.GetActive(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Alias != "" {
		if _, owner := char.AttributeByAlias(input.Alias); owner != "" && owner != input.Name {
			return nil, dnderr.AlreadyExistsf("alias '%s' already belongs to %s", input.Alias, owner).
				WithMeta("alias", input.Alias)
		}
	}

	char.SetAttribute(entities.NewAttribute(input.Name, input.Alias, input.Value))
	if err := s.repository.Update(ctx, char); err != nil {
		return nil, dnderr.Wrap(err, "failed to save attribute")
	}

	return char, nil
}

func (s *service) SaveThrow(ctx context.Context, input *SaveThrowInput) (*entities.Character, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > maxNameLength {
		return nil, dnderr.Validationf("throw name must be 1-%d characters", maxNameLength).
			WithMeta("name", input.Name)
	}
	if _, err := formula.Parse(input.Formula, nil); err != nil {
		return nil, err
	}

	char, err := s.GetActive(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	char.SaveThrow(&entities.Throw{Name: name, Formula: strings.TrimSpace(input.Formula)})
	if err := s.repository.Update(ctx, char); err != nil {
		return nil, dnderr.Wrap(err, "failed to save throw")
	}

	return char, nil
}
