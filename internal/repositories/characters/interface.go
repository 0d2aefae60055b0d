package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"
	"sort"
	"time"

	"github.com/KirkDiggler/dnd-dice-bot/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character, assigning an ID when it has none
	Create(ctx context.Context, character *entities.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*entities.Character, error)

	// GetByOwner retrieves all characters of an owner ordered by name
	GetByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error)

	// GetActiveByOwner retrieves the character the owner rolls as
	GetActiveByOwner(ctx context.Context, ownerID string) (*entities.Character, error)

	// Update replaces an existing character
	Update(ctx context.Context, character *entities.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}

// TimeProvider supplies timestamps for stored records
type TimeProvider interface {
	Now() time.Time
}

type utcTimeProvider struct{}

func (utcTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// activeOf returns the active character among chars
func activeOf(ownerID string, chars []*entities.Character) (*entities.Character, error) {
	for _, char := range chars {
		if char.Active {
			return char, nil
		}
	}
	return nil, dnderr.NotFoundf("owner '%s' has no active character", ownerID).
		WithMeta("owner_id", ownerID)
}

func validateForWrite(char *entities.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.OwnerID == "" {
		return dnderr.InvalidArgument("character owner ID is required")
	}
	if char.Name == "" {
		return dnderr.InvalidArgument("character name is required")
	}
	return nil
}

func sortByName(chars []*entities.Character) {
	sort.Slice(chars, func(i, j int) bool {
		if chars[i].Name != chars[j].Name {
			return chars[i].Name < chars[j].Name
		}
		return chars[i].ID < chars[j].ID
	})
}
