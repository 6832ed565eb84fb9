package projectiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "attributes:projectile:"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// TTL bounds how long an attachment outlives a projectile nobody cleaned
	// up (default: 1 minute)
	TTL time.Duration

	// KeyPrefix namespaces every key (default "attributes:projectile:")
	KeyPrefix string
}

type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
}

// NewRedisRepository creates a new Redis-backed projectile repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = time.Minute
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepo{
		client: cfg.Client,
		ttl:    ttl,
		prefix: prefix,
	}
}

// key generates the Redis key for a projectile
func (r *redisRepo) key(entityID string) string {
	return fmt.Sprintf("%s%s", r.prefix, entityID)
}

// Attach stores a valid set for a projectile
func (r *redisRepo) Attach(ctx context.Context, entityID string, set attribute.Set) error {
	if entityID == "" {
		return atterr.InvalidArgument("projectile ID is required")
	}
	if !set.IsValid() {
		return nil
	}

	data, err := json.Marshal(set)
	if err != nil {
		return atterr.WrapWithCode(err, atterr.CodeInternal, "failed to encode projectile attributes")
	}

	if err := r.client.Set(ctx, r.key(entityID), string(data), r.ttl).Err(); err != nil {
		return atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to attach projectile attributes").
			WithMeta("entity_id", entityID)
	}
	return nil
}

// Take returns the projectile's set. A consuming take uses GETDEL so only one
// caller can win it.
func (r *redisRepo) Take(ctx context.Context, entityID string, consume bool) (attribute.Set, bool, error) {
	if entityID == "" {
		return attribute.Empty(), false, atterr.InvalidArgument("projectile ID is required")
	}

	var cmd *redis.StringCmd
	if consume {
		cmd = r.client.GetDel(ctx, r.key(entityID))
	} else {
		cmd = r.client.Get(ctx, r.key(entityID))
	}

	raw, err := cmd.Result()
	if errors.Is(err, redis.Nil) {
		return attribute.Empty(), false, nil
	}
	if err != nil {
		return attribute.Empty(), false, atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to read projectile attributes").
			WithMeta("entity_id", entityID)
	}

	var set attribute.Set
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return attribute.Empty(), false, atterr.WrapWithCode(err, atterr.CodeInternal, "failed to decode projectile attributes").
			WithMeta("entity_id", entityID)
	}
	return set, true, nil
}

// Discard removes an attachment
func (r *redisRepo) Discard(ctx context.Context, entityID string) error {
	if entityID == "" {
		return atterr.InvalidArgument("projectile ID is required")
	}

	if err := r.client.Del(ctx, r.key(entityID)).Err(); err != nil {
		return atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to discard projectile attributes").
			WithMeta("entity_id", entityID)
	}
	return nil
}
