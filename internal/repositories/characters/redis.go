package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/dnd-dice-bot/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
	"github.com/KirkDiggler/dnd-dice-bot/internal/uuid"
	"github.com/redis/go-redis/v9"
)

// CharacterData represents the serialized form of a character in Redis
type CharacterData struct {
	ID         string                `json:"id"`
	OwnerID    string                `json:"owner_id"`
	Name       string                `json:"name"`
	Active     bool                  `json:"active"`
	Attributes []*entities.Attribute `json:"attributes"`
	Throws     []*entities.Throw     `json:"throws"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = utcTimeProvider{}
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
	}
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerCharactersKey generates the Redis key for an owner's character set
func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *entities.Character) error {
	if err := validateForWrite(char); err != nil {
		return err
	}
	if char.ID == "" {
		char.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to check character existence")
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	char.CreatedAt = r.timeProvider.Now()
	char.UpdatedAt = char.CreatedAt

	jsonData, err := json.Marshal(toCharacterData(char))
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal character")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), jsonData, 0)
	pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)

	if _, err = pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to create character").
			WithMeta("character_id", char.ID)
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get character")
	}

	return decodeCharacter(jsonData)
}

// GetByOwner loads every character of the owner with a single MGET.
// IDs whose record has vanished are skipped.
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to list character IDs")
	}

	characters := make([]*entities.Character, 0, len(ids))
	if len(ids) == 0 {
		return characters, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to load characters")
	}

	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		char, err := decodeCharacter(raw)
		if err != nil {
			return nil, err
		}
		characters = append(characters, char)
	}
	sortByName(characters)

	return characters, nil
}

// GetActiveByOwner retrieves the active character of an owner
func (r *redisRepo) GetActiveByOwner(ctx context.Context, ownerID string) (*entities.Character, error) {
	chars, err := r.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return activeOf(ownerID, chars)
}

// Update updates an existing character
func (r *redisRepo) Update(ctx context.Context, char *entities.Character) error {
	if err := validateForWrite(char); err != nil {
		return err
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	// Load the stored record to preserve its creation time and owner index
	existing, err := r.Get(ctx, char.ID)
	if err != nil {
		return err
	}

	char.CreatedAt = existing.CreatedAt
	char.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(toCharacterData(char))
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal character")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), jsonData, 0)
	if existing.OwnerID != char.OwnerID {
		pipe.SRem(ctx, r.ownerCharactersKey(existing.OwnerID), char.ID)
		pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to update character").
			WithMeta("character_id", char.ID)
	}

	return nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	char, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerCharactersKey(char.OwnerID), id)

	if _, err = pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to delete character").
			WithMeta("character_id", id)
	}

	return nil
}

func toCharacterData(char *entities.Character) *CharacterData {
	return &CharacterData{
		ID:         char.ID,
		OwnerID:    char.OwnerID,
		Name:       char.Name,
		Active:     char.Active,
		Attributes: char.Attributes,
		Throws:     char.Throws,
		CreatedAt:  char.CreatedAt,
		UpdatedAt:  char.UpdatedAt,
	}
}

func decodeCharacter(jsonData string) (*entities.Character, error) {
	var data CharacterData
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, dnderr.Wrap(err, "failed to unmarshal character")
	}

	return &entities.Character{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Name:       data.Name,
		Active:     data.Active,
		Attributes: data.Attributes,
		Throws:     data.Throws,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}, nil
}
