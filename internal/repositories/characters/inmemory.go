package characters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dnd-dice-bot/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
	"github.com/KirkDiggler/dnd-dice-bot/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the character repository.
// Useful for testing and for running the bot without Redis.
type InMemoryRepository struct {
	mu            sync.RWMutex
	characters    map[string]*entities.Character
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// InMemoryConfig holds optional collaborators of the in-memory repository
type InMemoryConfig struct {
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(cfg *InMemoryConfig) Repository {
	repo := &InMemoryRepository{
		characters:    make(map[string]*entities.Character),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		timeProvider:  utcTimeProvider{},
	}
	if cfg != nil && cfg.UUIDGenerator != nil {
		repo.uuidGenerator = cfg.UUIDGenerator
	}
	if cfg != nil && cfg.TimeProvider != nil {
		repo.timeProvider = cfg.TimeProvider
	}
	return repo
}

// Create stores a copy of character
func (r *InMemoryRepository) Create(_ context.Context, character *entities.Character) error {
	if err := validateForWrite(character); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if character.ID == "" {
		character.ID = r.uuidGenerator.New()
	}
	if _, exists := r.characters[character.ID]; exists {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", character.ID).
			WithMeta("character_id", character.ID)
	}

	character.CreatedAt = r.timeProvider.Now()
	character.UpdatedAt = character.CreatedAt
	r.characters[character.ID] = character.Clone()

	return nil
}

// Get retrieves a copy of the character
func (r *InMemoryRepository) Get(_ context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, exists := r.characters[id]
	if !exists {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return character.Clone(), nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *InMemoryRepository) GetByOwner(_ context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Character, 0)
	for _, char := range r.characters {
		if char.OwnerID == ownerID {
			result = append(result, char.Clone())
		}
	}
	sortByName(result)

	return result, nil
}

// GetActiveByOwner retrieves the active character of an owner
func (r *InMemoryRepository) GetActiveByOwner(ctx context.Context, ownerID string) (*entities.Character, error) {
	chars, err := r.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return activeOf(ownerID, chars)
}

// Update replaces an existing character, keeping its creation time
func (r *InMemoryRepository) Update(_ context.Context, character *entities.Character) error {
	if err := validateForWrite(character); err != nil {
		return err
	}
	if character.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.characters[character.ID]
	if !exists {
		return dnderr.NotFoundf("character with ID '%s' not found", character.ID).
			WithMeta("character_id", character.ID)
	}

	character.CreatedAt = existing.CreatedAt
	character.UpdatedAt = r.timeProvider.Now()
	r.characters[character.ID] = character.Clone()

	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	return nil
}
