package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/attribute-engine/internal/config"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, time.Minute, cfg.ProjectileTTL)
	assert.Equal(t, 8, cfg.RefreshConcurrency)
	assert.Empty(t, cfg.SlotsFile)
}

func TestLoad_FromEnvironment(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"ATTRIBUTE_STORE":               "redis",
		"REDIS_ADDR":                    "cache:6380",
		"REDIS_PASSWORD":                "secret",
		"REDIS_DB":                      "3",
		"ATTRIBUTE_PROJECTILE_TTL":      "30s",
		"ATTRIBUTE_REFRESH_CONCURRENCY": "2",
		"ATTRIBUTE_SLOTS_FILE":          "slots.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, config.StoreRedis, cfg.Store)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, "secret", cfg.Redis.Password)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 30*time.Second, cfg.ProjectileTTL)
	assert.Equal(t, 2, cfg.RefreshConcurrency)
	assert.Equal(t, "slots.yaml", cfg.SlotsFile)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown store", key: "ATTRIBUTE_STORE", value: "postgres"},
		{name: "zero ttl", key: "ATTRIBUTE_PROJECTILE_TTL", value: "0s"},
		{name: "unparseable ttl", key: "ATTRIBUTE_PROJECTILE_TTL", value: "soon"},
		{name: "zero concurrency", key: "ATTRIBUTE_REFRESH_CONCURRENCY", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFrom(map[string]string{tt.key: tt.value})
			require.Error(t, err)
			assert.True(t, atterr.IsConfiguration(err))
		})
	}
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("ATTRIBUTE_REFRESH_CONCURRENCY", "5")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.RefreshConcurrency)
}

func TestRedisConfig_Options(t *testing.T) {
	t.Run("discrete fields", func(t *testing.T) {
		opts, err := config.RedisConfig{Addr: "cache:6379", Password: "pw", DB: 2}.Options()
		require.NoError(t, err)
		assert.Equal(t, "cache:6379", opts.Addr)
		assert.Equal(t, "pw", opts.Password)
		assert.Equal(t, 2, opts.DB)
	})

	t.Run("url takes precedence", func(t *testing.T) {
		opts, err := config.RedisConfig{URL: "redis://remote:6390/4", Addr: "ignored:1"}.Options()
		require.NoError(t, err)
		assert.Equal(t, "remote:6390", opts.Addr)
		assert.Equal(t, 4, opts.DB)
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := config.RedisConfig{URL: "http://nope"}.Options()
		assert.True(t, atterr.IsConfiguration(err))
	})
}
