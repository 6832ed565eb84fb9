package projectiles

import (
	"context"
	"sync"

	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
)

// InMemoryRepository keeps attachments in process. The lock makes a consuming
// Take atomic: two concurrent takers never both see the set.
type InMemoryRepository struct {
	mu          sync.Mutex
	attachments map[string]attribute.Set
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		attachments: make(map[string]attribute.Set),
	}
}

// Attach stores a valid set for a projectile
func (r *InMemoryRepository) Attach(ctx context.Context, entityID string, set attribute.Set) error {
	if entityID == "" {
		return atterr.InvalidArgument("projectile ID is required")
	}
	if !set.IsValid() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.attachments[entityID] = set
	return nil
}

// Take returns the projectile's set, removing it when consume is true
func (r *InMemoryRepository) Take(ctx context.Context, entityID string, consume bool) (attribute.Set, bool, error) {
	if entityID == "" {
		return attribute.Empty(), false, atterr.InvalidArgument("projectile ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.attachments[entityID]
	if ok && consume {
		delete(r.attachments, entityID)
	}
	return set, ok, nil
}

// Discard removes an attachment
func (r *InMemoryRepository) Discard(ctx context.Context, entityID string) error {
	if entityID == "" {
		return atterr.InvalidArgument("projectile ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.attachments, entityID)
	return nil
}
