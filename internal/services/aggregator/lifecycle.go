package aggregator

import (
	"context"
	"log"

	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	"github.com/KirkDiggler/attribute-engine/internal/domain/condition"
	"github.com/KirkDiggler/attribute-engine/internal/domain/consumer"
	"github.com/KirkDiggler/attribute-engine/internal/domain/entity"
	"github.com/KirkDiggler/attribute-engine/internal/domain/events"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
)

// RegisterConsumer issues a key for an external registrant
func (s *service) RegisterConsumer(name string) (consumer.Key, error) {
	return s.consumers.Register(name)
}

// UnregisterConsumer drops the consumer's entries everywhere, then releases
// its key
func (s *service) UnregisterConsumer(ctx context.Context, key consumer.Key) error {
	if err := s.requireConsumer(key); err != nil {
		return err
	}

	if err := s.scoped.DropConsumer(ctx, key); err != nil {
		return atterr.Wrap(err, "failed to drop consumer data").
			WithMeta("operation", "UnregisterConsumer")
	}
	s.consumers.Unregister(key)

	log.Printf("AttributeService: Unregistered consumer %s", key)
	s.emit(events.NewConsumerDroppedEvent(key.ID(), key.Name()))
	return nil
}

// requireConsumer rejects keys the registry did not issue or has released
func (s *service) requireConsumer(key consumer.Key) error {
	if key.IsZero() {
		return atterr.InvalidArgument("consumer key is required")
	}
	if _, ok := s.consumers.Lookup(key.ID()); !ok {
		return atterr.NotFoundf("consumer %s is not registered", key).
			WithMeta("consumer_id", key.ID())
	}
	return nil
}

// SetEntityData replaces a consumer's entry for an entity
func (s *service) SetEntityData(ctx context.Context, key consumer.Key, entityID string, set attribute.Set) error {
	if err := s.requireConsumer(key); err != nil {
		return err
	}
	return s.scoped.Set(ctx, key, entityID, set)
}

// GetEntityData returns a consumer's entry for an entity
func (s *service) GetEntityData(ctx context.Context, key consumer.Key, entityID string) (attribute.Set, bool, error) {
	if err := s.requireConsumer(key); err != nil {
		return attribute.Empty(), false, err
	}
	return s.scoped.Get(ctx, key, entityID)
}

// HasEntityData reports whether a consumer has an entry for an entity
func (s *service) HasEntityData(ctx context.Context, key consumer.Key, entityID string) (bool, error) {
	if err := s.requireConsumer(key); err != nil {
		return false, err
	}
	return s.scoped.Has(ctx, key, entityID)
}

// RemoveEntityData removes and returns a consumer's entry
func (s *service) RemoveEntityData(ctx context.Context, key consumer.Key, entityID string) (attribute.Set, bool, error) {
	if err := s.requireConsumer(key); err != nil {
		return attribute.Empty(), false, err
	}
	return s.scoped.Remove(ctx, key, entityID)
}

// GetScopedData folds all consumer entries for an entity
func (s *service) GetScopedData(ctx context.Context, entityID string) (attribute.Set, error) {
	return s.scoped.GetMerged(ctx, entityID)
}

// DropEntity releases everything held for a despawned entity
func (s *service) DropEntity(ctx context.Context, entityID string) error {
	if err := s.scoped.DropEntity(ctx, entityID); err != nil {
		return atterr.Wrap(err, "failed to drop scoped attributes").
			WithMeta("operation", "DropEntity")
	}
	if err := s.projectiles.Discard(ctx, entityID); err != nil {
		return atterr.Wrap(err, "failed to discard projectile attributes").
			WithMeta("operation", "DropEntity")
	}

	s.mu.Lock()
	delete(s.cache, entityID)
	s.mu.Unlock()

	s.emit(events.NewEntityDroppedEvent(entityID))
	return nil
}

// AttachProjectile stores a set on a projectile; invalid sets are ignored
func (s *service) AttachProjectile(ctx context.Context, projectileID string, set attribute.Set) error {
	return s.projectiles.Attach(ctx, projectileID, set)
}

// TakeProjectile reads a projectile's set, removing it when consume is true
func (s *service) TakeProjectile(ctx context.Context, projectileID string, consume bool) (attribute.Set, bool, error) {
	return s.projectiles.Take(ctx, projectileID, consume)
}

// LaunchProjectile arms a projectile with the shooter's current aggregate
func (s *service) LaunchProjectile(ctx context.Context, shooter entity.Entity, projectileID string) (attribute.Set, error) {
	set, err := s.ComputeForEntity(ctx, shooter, condition.AllSites())
	if err != nil {
		return attribute.Empty(), err
	}

	if err := s.projectiles.Attach(ctx, projectileID, set); err != nil {
		return attribute.Empty(), atterr.Wrap(err, "failed to attach projectile attributes").
			WithMeta("operation", "LaunchProjectile")
	}

	if set.IsValid() {
		s.emit(events.NewProjectileAttachedEvent(projectileID, shooter.GetID(), set))
	}
	return set, nil
}
