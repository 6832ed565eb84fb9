package entity

import (
	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	"github.com/KirkDiggler/attribute-engine/internal/domain/item"
)

// Kind distinguishes players from other living entities
type Kind string

const (
	KindPlayer     Kind = "player"
	KindMob        Kind = "mob"
	KindProjectile Kind = "projectile"
)

// Entity is anything the engine can compute attributes for. The ID is the
// host-supplied stable identity (a UUID string in practice).
type Entity interface {
	GetID() string
	GetKind() Kind
}

// Leveled is implemented by entities that carry an experience level
type Leveled interface {
	GetLevel() int
}

// Equipped is implemented by entities that hold items in named positions
type Equipped interface {
	// GetEquipped returns the item in position, nil when empty
	GetEquipped(position string) item.Item
}

// Intrinsic is implemented by entities with base attributes of their own
type Intrinsic interface {
	GetBaseAttributes() attribute.Set
}

// Character is the concrete entity used by the debug tooling and tests
type Character struct {
	ID         string                 `json:"id"`
	Kind       Kind                   `json:"kind"`
	Level      int                    `json:"level"`
	Equipment  map[string]*item.Basic `json:"equipment"`
	Attributes attribute.Set          `json:"attributes"`
}

func (c *Character) GetID() string { return c.ID }

func (c *Character) GetKind() Kind {
	if c.Kind == "" {
		return KindPlayer
	}
	return c.Kind
}

func (c *Character) GetLevel() int { return c.Level }

func (c *Character) GetBaseAttributes() attribute.Set { return c.Attributes }

// GetEquipped returns nil (an untyped nil interface) for empty positions
func (c *Character) GetEquipped(position string) item.Item {
	it, ok := c.Equipment[position]
	if !ok || it == nil {
		return nil
	}
	return it
}

// Equip places an item in a position, replacing whatever was there
func (c *Character) Equip(position string, it *item.Basic) {
	if c.Equipment == nil {
		c.Equipment = make(map[string]*item.Basic)
	}
	if it == nil {
		delete(c.Equipment, position)
		return
	}
	c.Equipment[position] = it
}
