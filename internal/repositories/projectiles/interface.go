package projectiles

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/KirkDiggler/attribute-engine/internal/repositories/projectiles Repository

import (
	"context"

	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
)

// Repository holds the one-shot attribute set a projectile carries from its
// shooter to its impact
type Repository interface {
	// Attach stores the set for a projectile. Invalid sets (nothing non-zero)
	// are silently ignored.
	Attach(ctx context.Context, entityID string, set attribute.Set) error

	// Take returns the projectile's set. With consume the entry is removed, and
	// at most one caller observes it.
	Take(ctx context.Context, entityID string, consume bool) (attribute.Set, bool, error)

	// Discard removes an attachment without reading it (projectile destroyed)
	Discard(ctx context.Context, entityID string) error
}
