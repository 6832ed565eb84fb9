package scoped

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	"github.com/KirkDiggler/attribute-engine/internal/domain/consumer"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "attributes:scoped:"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// KeyPrefix namespaces every key (default "attributes:scoped:")
	KeyPrefix string
}

// redisRepo stores one hash per entity (field = consumer ID, value = JSON
// set), one index set per consumer listing its entities, and one set of
// tracked entities.
type redisRepo struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisRepository creates a new Redis-backed scoped repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepo{
		client: cfg.Client,
		prefix: prefix,
	}
}

// entityKey generates the Redis key for an entity's consumer hash
func (r *redisRepo) entityKey(entityID string) string {
	return fmt.Sprintf("%sentity:%s", r.prefix, entityID)
}

// consumerKey generates the Redis key for a consumer's entity index
func (r *redisRepo) consumerKey(consumerID string) string {
	return fmt.Sprintf("%sconsumer:%s:entities", r.prefix, consumerID)
}

// entitiesKey generates the Redis key for the tracked entity set
func (r *redisRepo) entitiesKey() string {
	return r.prefix + "entities"
}

// GetMerged folds every consumer's entry for an entity. Entries that fail to
// decode are skipped so one corrupt entry cannot hide the others.
func (r *redisRepo) GetMerged(ctx context.Context, entityID string) (attribute.Set, error) {
	if err := validateEntity(entityID); err != nil {
		return attribute.Empty(), err
	}

	values, err := r.client.HVals(ctx, r.entityKey(entityID)).Result()
	if err != nil {
		return attribute.Empty(), atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to read scoped attributes").
			WithMeta("entity_id", entityID)
	}

	acc := attribute.NewAccumulator()
	for _, raw := range values {
		var set attribute.Set
		if err := json.Unmarshal([]byte(raw), &set); err != nil {
			log.Printf("ScopedRepository: Skipping corrupt entry for entity %s: %v", entityID, err)
			continue
		}
		acc.Add(set)
	}
	return acc.Set(), nil
}

// Get returns one consumer's entry
func (r *redisRepo) Get(ctx context.Context, key consumer.Key, entityID string) (attribute.Set, bool, error) {
	if err := validatePair(key, entityID); err != nil {
		return attribute.Empty(), false, err
	}

	raw, err := r.client.HGet(ctx, r.entityKey(entityID), key.ID()).Result()
	if errors.Is(err, redis.Nil) {
		return attribute.Empty(), false, nil
	}
	if err != nil {
		return attribute.Empty(), false, atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to read scoped attributes").
			WithMeta("entity_id", entityID).
			WithMeta("consumer_id", key.ID())
	}

	var set attribute.Set
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return attribute.Empty(), false, atterr.WrapWithCode(err, atterr.CodeInternal, "failed to decode scoped attributes").
			WithMeta("entity_id", entityID).
			WithMeta("consumer_id", key.ID())
	}
	return set, true, nil
}

// Has reports whether a consumer has an entry for the entity
func (r *redisRepo) Has(ctx context.Context, key consumer.Key, entityID string) (bool, error) {
	if err := validatePair(key, entityID); err != nil {
		return false, err
	}

	exists, err := r.client.HExists(ctx, r.entityKey(entityID), key.ID()).Result()
	if err != nil {
		return false, atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to check scoped attributes").
			WithMeta("entity_id", entityID)
	}
	return exists, nil
}

// Set inserts or replaces a consumer's entry
func (r *redisRepo) Set(ctx context.Context, key consumer.Key, entityID string, set attribute.Set) error {
	if err := validatePair(key, entityID); err != nil {
		return err
	}

	data, err := json.Marshal(set)
	if err != nil {
		return atterr.WrapWithCode(err, atterr.CodeInternal, "failed to encode scoped attributes")
	}

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, r.entityKey(entityID), key.ID(), string(data))
	pipe.SAdd(ctx, r.consumerKey(key.ID()), entityID)
	pipe.SAdd(ctx, r.entitiesKey(), entityID)
	if _, err := pipe.Exec(ctx); err != nil {
		return atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to store scoped attributes").
			WithMeta("entity_id", entityID).
			WithMeta("consumer_id", key.ID())
	}
	return nil
}

// removeScript reads and deletes one consumer's entry in a single step so that
// concurrent removers see the value at most once. It untracks the entity when
// its last entry goes.
//
// KEYS: entity hash, consumer index, tracked entities
// ARGV: consumer ID, entity ID
var removeScript = redis.NewScript(`
local raw = redis.call('HGET', KEYS[1], ARGV[1])
if not raw then
	return false
end
redis.call('HDEL', KEYS[1], ARGV[1])
redis.call('SREM', KEYS[2], ARGV[2])
if redis.call('HLEN', KEYS[1]) == 0 then
	redis.call('SREM', KEYS[3], ARGV[2])
end
return raw
`)

// Remove deletes a consumer's entry and returns it
func (r *redisRepo) Remove(ctx context.Context, key consumer.Key, entityID string) (attribute.Set, bool, error) {
	if err := validatePair(key, entityID); err != nil {
		return attribute.Empty(), false, err
	}

	keys := []string{r.entityKey(entityID), r.consumerKey(key.ID()), r.entitiesKey()}
	raw, err := removeScript.Run(ctx, r.client, keys, key.ID(), entityID).Text()
	if errors.Is(err, redis.Nil) {
		return attribute.Empty(), false, nil
	}
	if err != nil {
		return attribute.Empty(), false, atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to remove scoped attributes").
			WithMeta("entity_id", entityID).
			WithMeta("consumer_id", key.ID())
	}

	// The entry is gone either way; a corrupt one is reported, not returned
	var set attribute.Set
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return attribute.Empty(), false, atterr.WrapWithCode(err, atterr.CodeInternal, "failed to decode removed scoped attributes").
			WithMeta("entity_id", entityID).
			WithMeta("consumer_id", key.ID())
	}
	return set, true, nil
}

// DropEntity removes every consumer's entry for an entity
func (r *redisRepo) DropEntity(ctx context.Context, entityID string) error {
	if err := validateEntity(entityID); err != nil {
		return err
	}

	consumerIDs, err := r.client.HKeys(ctx, r.entityKey(entityID)).Result()
	if err != nil {
		return atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to list entity consumers").
			WithMeta("entity_id", entityID)
	}

	pipe := r.client.Pipeline()
	for _, consumerID := range consumerIDs {
		pipe.SRem(ctx, r.consumerKey(consumerID), entityID)
	}
	pipe.Del(ctx, r.entityKey(entityID))
	pipe.SRem(ctx, r.entitiesKey(), entityID)
	if _, err := pipe.Exec(ctx); err != nil {
		return atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to drop entity").
			WithMeta("entity_id", entityID)
	}
	return nil
}

// DropConsumer removes a consumer's entries across all entities
func (r *redisRepo) DropConsumer(ctx context.Context, key consumer.Key) error {
	if err := validateKey(key); err != nil {
		return err
	}

	entityIDs, err := r.client.SMembers(ctx, r.consumerKey(key.ID())).Result()
	if err != nil {
		return atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to list consumer entities").
			WithMeta("consumer_id", key.ID())
	}

	pipe := r.client.Pipeline()
	lengths := make(map[string]*redis.IntCmd, len(entityIDs))
	for _, entityID := range entityIDs {
		pipe.HDel(ctx, r.entityKey(entityID), key.ID())
		lengths[entityID] = pipe.HLen(ctx, r.entityKey(entityID))
	}
	pipe.Del(ctx, r.consumerKey(key.ID()))
	if _, err := pipe.Exec(ctx); err != nil {
		return atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to drop consumer").
			WithMeta("consumer_id", key.ID())
	}

	var emptied []any
	for entityID, length := range lengths {
		if length.Val() == 0 {
			emptied = append(emptied, entityID)
		}
	}
	if len(emptied) > 0 {
		if err := r.client.SRem(ctx, r.entitiesKey(), emptied...).Err(); err != nil {
			return atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to untrack entities")
		}
	}

	log.Printf("ScopedRepository: Dropped consumer %s from %d entities", key, len(entityIDs))
	return nil
}

// Entities lists the entity IDs that currently have entries, sorted
func (r *redisRepo) Entities(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.entitiesKey()).Result()
	if err != nil {
		return nil, atterr.WrapWithCode(err, atterr.CodeUnavailable, "failed to list tracked entities")
	}
	sort.Strings(ids)
	return ids, nil
}
