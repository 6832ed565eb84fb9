package scoped

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/KirkDiggler/attribute-engine/internal/repositories/scoped Repository

import (
	"context"

	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	"github.com/KirkDiggler/attribute-engine/internal/domain/consumer"
)

// Repository keeps consumer-private attribute sets per entity. Each
// (entity, consumer) pair holds at most one set; one consumer's entry is never
// visible through another consumer's key.
type Repository interface {
	// GetMerged folds every consumer's entry for an entity. An entity without
	// entries yields an empty set, never an error.
	GetMerged(ctx context.Context, entityID string) (attribute.Set, error)

	// Get returns one consumer's entry; false when there is none
	Get(ctx context.Context, key consumer.Key, entityID string) (attribute.Set, bool, error)

	// Has reports whether a consumer has an entry for the entity
	Has(ctx context.Context, key consumer.Key, entityID string) (bool, error)

	// Set inserts or replaces a consumer's entry. It never merges with the
	// previous value.
	Set(ctx context.Context, key consumer.Key, entityID string, set attribute.Set) error

	// Remove deletes a consumer's entry and returns what was removed
	Remove(ctx context.Context, key consumer.Key, entityID string) (attribute.Set, bool, error)

	// DropEntity removes every consumer's entry for an entity (despawn, leave)
	DropEntity(ctx context.Context, entityID string) error

	// DropConsumer removes a consumer's entries across all entities (plugin
	// teardown)
	DropConsumer(ctx context.Context, key consumer.Key) error

	// Entities lists the entity IDs that currently have entries
	Entities(ctx context.Context) ([]string, error)
}
