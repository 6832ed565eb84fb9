//go:build integration
// +build integration

package scoped_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	"github.com/KirkDiggler/attribute-engine/internal/domain/consumer"
	"github.com/KirkDiggler/attribute-engine/internal/repositories/scoped"
	"github.com/KirkDiggler/attribute-engine/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	// Starts a throwaway Redis container; skipped when Docker is unavailable
	client := testutils.CreateRedisContainerClient(t)

	repo := scoped.NewRedisRepository(&scoped.RedisRepoConfig{Client: client})
	ctx := context.Background()

	quests := consumer.NewKey("quests-id", "quests")
	guilds := consumer.NewKey("guilds-id", "guilds")

	t.Run("entries from two consumers merge", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, quests, "hero", attribute.Empty().With(attribute.KeyAttack, 4)))
		require.NoError(t, repo.Set(ctx, guilds, "hero", attribute.Empty().With(attribute.KeyAttack, 1)))

		merged, err := repo.GetMerged(ctx, "hero")
		require.NoError(t, err)
		assert.Equal(t, 5.0, merged.Get(attribute.KeyAttack))
	})

	t.Run("dropping a consumer keeps the other", func(t *testing.T) {
		require.NoError(t, repo.DropConsumer(ctx, quests))

		merged, err := repo.GetMerged(ctx, "hero")
		require.NoError(t, err)
		assert.Equal(t, 1.0, merged.Get(attribute.KeyAttack))
	})

	t.Run("dropping the entity clears everything", func(t *testing.T) {
		require.NoError(t, repo.DropEntity(ctx, "hero"))

		entities, err := repo.Entities(ctx)
		require.NoError(t, err)
		assert.Empty(t, entities)
	})
}
