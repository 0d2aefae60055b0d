package characters_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dnd-dice-bot/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
	"github.com/KirkDiggler/dnd-dice-bot/internal/repositories/characters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repositoryContract runs the behaviour every Repository implementation shares
func repositoryContract(t *testing.T, repo characters.Repository) {
	ctx := context.Background()

	tall := &entities.Character{
		OwnerID:    "owner-1",
		Name:       "Tall",
		Active:     true,
		Attributes: []*entities.Attribute{entities.NewAttribute("Dexterity", "DEX", 20)},
	}
	require.NoError(t, repo.Create(ctx, tall))
	require.NotEmpty(t, tall.ID)
	assert.False(t, tall.CreatedAt.IsZero())

	alice := &entities.Character{OwnerID: "owner-1", Name: "Alice"}
	require.NoError(t, repo.Create(ctx, alice))
	require.NoError(t, repo.Create(ctx, &entities.Character{OwnerID: "owner-2", Name: "Other"}))

	t.Run("get returns a copy", func(t *testing.T) {
		got, err := repo.Get(ctx, tall.ID)
		require.NoError(t, err)
		assert.Equal(t, "Tall", got.Name)

		got.Name = "Changed"
		again, err := repo.Get(ctx, tall.ID)
		require.NoError(t, err)
		assert.Equal(t, "Tall", again.Name)
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := repo.Create(ctx, &entities.Character{ID: tall.ID, OwnerID: "owner-1", Name: "Dup"})
		assert.True(t, dnderr.IsAlreadyExists(err))
	})

	t.Run("owner listing is sorted", func(t *testing.T) {
		chars, err := repo.GetByOwner(ctx, "owner-1")
		require.NoError(t, err)
		require.Len(t, chars, 2)
		assert.Equal(t, "Alice", chars[0].Name)
		assert.Equal(t, "Tall", chars[1].Name)
	})

	t.Run("active character", func(t *testing.T) {
		active, err := repo.GetActiveByOwner(ctx, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, tall.ID, active.ID)

		_, err = repo.GetActiveByOwner(ctx, "owner-2")
		assert.True(t, dnderr.IsNotFound(err))
	})

	t.Run("update keeps created at", func(t *testing.T) {
		got, err := repo.Get(ctx, alice.ID)
		require.NoError(t, err)

		got.SaveThrow(&entities.Throw{Name: "Insight", Formula: "1d20 2d4 + 3"})
		require.NoError(t, repo.Update(ctx, got))

		reloaded, err := repo.Get(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "1d20 2d4 + 3", reloaded.Throw("Insight").Formula)
		assert.True(t, reloaded.CreatedAt.Equal(alice.CreatedAt))
	})

	t.Run("update missing", func(t *testing.T) {
		err := repo.Update(ctx, &entities.Character{ID: "missing", OwnerID: "owner-1", Name: "Ghost"})
		assert.True(t, dnderr.IsNotFound(err))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, alice.ID))

		_, err := repo.Get(ctx, alice.ID)
		assert.True(t, dnderr.IsNotFound(err))

		chars, err := repo.GetByOwner(ctx, "owner-1")
		require.NoError(t, err)
		assert.Len(t, chars, 1)
	})
}

func TestInMemoryRepository(t *testing.T) {
	repositoryContract(t, characters.NewInMemoryRepository(nil))
}

func TestInMemoryRepository_InvalidArguments(t *testing.T) {
	repo := characters.NewInMemoryRepository(nil)
	ctx := context.Background()

	assert.True(t, dnderr.IsInvalidArgument(repo.Create(ctx, nil)))
	_, err := repo.Get(ctx, "")
	assert.True(t, dnderr.IsInvalidArgument(err))
	_, err = repo.GetByOwner(ctx, "")
	assert.True(t, dnderr.IsInvalidArgument(err))
	assert.True(t, dnderr.IsInvalidArgument(repo.Delete(ctx, "")))
}
