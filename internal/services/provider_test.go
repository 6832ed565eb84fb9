package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/attribute-engine/internal/config"
	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	"github.com/KirkDiggler/attribute-engine/internal/domain/condition"
	"github.com/KirkDiggler/attribute-engine/internal/domain/entity"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
	"github.com/KirkDiggler/attribute-engine/internal/services"
	"github.com/KirkDiggler/attribute-engine/internal/testutils"
)

func TestNewProvider_Defaults(t *testing.T) {
	provider, err := services.NewProvider(nil)
	require.NoError(t, err)

	sites := provider.AggregatorService.Sites()
	names := make([]string, 0, len(sites))
	for _, site := range sites {
		names = append(names, site.Name)
	}
	assert.Equal(t, []string{"main-hand", "off-hand", "helmet", "chest", "leggings", "boots"}, names)

	player := testutils.CreateTestPlayer("hero", 10)
	player.Equip("main-hand", testutils.CreateTestSword(5))
	player.Equip("chest", testutils.CreateTestChestplate(3, 8))

	set, err := provider.AggregatorService.ComputeForEntity(context.Background(), player, condition.AllSites())
	require.NoError(t, err)
	assert.Equal(t, 5.0, set.Get(attribute.KeyAttack))
	assert.Equal(t, 3.0, set.Get(attribute.KeyDefense))
}

func TestNewProvider_SlotsFile(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"ATTRIBUTE_SLOTS_FILE": "../config/testdata/slots.yaml",
	})
	require.NoError(t, err)

	provider, err := services.NewProvider(&services.ProviderConfig{Config: cfg})
	require.NoError(t, err)

	site, ok := provider.Slots.Get("weapon")
	require.True(t, ok)

	player := testutils.CreateTestPlayer("hero", 1)
	sword := testutils.CreateTestItem("sword", "Attack: 4")
	player.Equip("main-hand", sword)
	assert.Equal(t, sword, site.Extract(player))
}

func TestNewProvider_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *services.ProviderConfig
	}{
		{
			name: "duplicate slot",
			cfg: &services.ProviderConfig{Slots: []config.SlotDefinition{
				{Name: "chest"}, {Name: "chest", Priority: 1},
			}},
		},
		{
			name: "missing slots file",
			cfg: &services.ProviderConfig{Config: &config.Config{
				Store:              config.StoreMemory,
				ProjectileTTL:      time.Minute,
				RefreshConcurrency: 1,
				SlotsFile:          "nope.yaml",
			}},
		},
		{
			name: "redis without client",
			cfg: &services.ProviderConfig{Config: &config.Config{
				Store:              config.StoreRedis,
				ProjectileTTL:      time.Minute,
				RefreshConcurrency: 1,
			}},
		},
		{
			name: "invalid config",
			cfg:  &services.ProviderConfig{Config: &config.Config{Store: "postgres"}},
		},
		{
			name: "rule shadowing a built-in",
			cfg:  &services.ProviderConfig{Rules: []condition.Rule{condition.NewSiteRule(nil)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.NewProvider(tt.cfg)
			require.Error(t, err)
			assert.True(t, atterr.IsConfiguration(err))
		})
	}
}

func TestNewProvider_CustomLeveler(t *testing.T) {
	provider, err := services.NewProvider(&services.ProviderConfig{
		Leveler: entity.LevelerFunc(func(entity.Entity) (int, bool) { return 99, true }),
	})
	require.NoError(t, err)

	mob := testutils.CreateTestMob("boss", attribute.Empty())
	assert.Equal(t, condition.Level(99), provider.AggregatorService.EntityLevel(mob))
}

func TestNewProvider_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg, err := config.LoadFrom(map[string]string{"ATTRIBUTE_STORE": "redis"})
	require.NoError(t, err)

	provider, err := services.NewProvider(&services.ProviderConfig{
		Config:      cfg,
		RedisClient: client,
	})
	require.NoError(t, err)

	ctx := context.Background()
	svc := provider.AggregatorService

	key, err := svc.RegisterConsumer("quests")
	require.NoError(t, err)
	require.NoError(t, svc.SetEntityData(ctx, key, "hero", attribute.Empty().With(attribute.KeyAttack, 2)))
	require.NoError(t, svc.AttachProjectile(ctx, "arrow", attribute.Empty().With(attribute.KeyAttack, 1)))

	assert.True(t, mr.Exists("attributes:scoped:entity:hero"))
	assert.True(t, mr.Exists("attributes:projectile:arrow"))
	assert.Positive(t, mr.TTL("attributes:projectile:arrow"))

	set, err := svc.ComputeForEntity(ctx, testutils.CreateTestPlayer("hero", 1), condition.AllSites())
	require.NoError(t, err)
	assert.Equal(t, 2.0, set.Get(attribute.KeyAttack))
}
