package scoped

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	"github.com/KirkDiggler/attribute-engine/internal/domain/consumer"
)

// InMemoryRepository keeps entries in process. Sets are immutable, so entries
// are stored and returned without copying.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]map[string]attribute.Set // entityID -> consumerID -> set
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		entries: make(map[string]map[string]attribute.Set),
	}
}

// GetMerged folds every consumer's entry for an entity
func (r *InMemoryRepository) GetMerged(ctx context.Context, entityID string) (attribute.Set, error) {
	if err := validateEntity(entityID); err != nil {
		return attribute.Empty(), err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	acc := attribute.NewAccumulator()
	for _, set := range r.entries[entityID] {
		acc.Add(set)
	}
	return acc.Set(), nil
}

// Get returns one consumer's entry
func (r *InMemoryRepository) Get(ctx context.Context, key consumer.Key, entityID string) (attribute.Set, bool, error) {
	if err := validatePair(key, entityID); err != nil {
		return attribute.Empty(), false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.entries[entityID][key.ID()]
	return set, ok, nil
}

// Has reports whether a consumer has an entry for the entity
func (r *InMemoryRepository) Has(ctx context.Context, key consumer.Key, entityID string) (bool, error) {
	_, ok, err := r.Get(ctx, key, entityID)
	return ok, err
}

// Set inserts or replaces a consumer's entry
func (r *InMemoryRepository) Set(ctx context.Context, key consumer.Key, entityID string, set attribute.Set) error {
	if err := validatePair(key, entityID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	consumers, ok := r.entries[entityID]
	if !ok {
		consumers = make(map[string]attribute.Set)
		r.entries[entityID] = consumers
	}
	consumers[key.ID()] = set
	return nil
}

// Remove deletes a consumer's entry and returns it
func (r *InMemoryRepository) Remove(ctx context.Context, key consumer.Key, entityID string) (attribute.Set, bool, error) {
	if err := validatePair(key, entityID); err != nil {
		return attribute.Empty(), false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	consumers := r.entries[entityID]
	set, ok := consumers[key.ID()]
	if !ok {
		return attribute.Empty(), false, nil
	}

	delete(consumers, key.ID())
	if len(consumers) == 0 {
		delete(r.entries, entityID)
	}
	return set, true, nil
}

// DropEntity removes every consumer's entry for an entity
func (r *InMemoryRepository) DropEntity(ctx context.Context, entityID string) error {
	if err := validateEntity(entityID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, entityID)
	return nil
}

// DropConsumer removes a consumer's entries across all entities
func (r *InMemoryRepository) DropConsumer(ctx context.Context, key consumer.Key) error {
	if err := validateKey(key); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for entityID, consumers := range r.entries {
		delete(consumers, key.ID())
		if len(consumers) == 0 {
			delete(r.entries, entityID)
		}
	}
	return nil
}

// Entities lists the entity IDs that currently have entries, sorted
func (r *InMemoryRepository) Entities(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
