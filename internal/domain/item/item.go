package item

//go:generate mockgen -destination=mocks/mock_parser.go -package=mocks github.com/KirkDiggler/attribute-engine/internal/domain/item Parser

import "github.com/KirkDiggler/attribute-engine/internal/domain/attribute"

// Item is the raw handle of an attribute-bearing source. The engine never looks
// inside it; a Parser does.
type Item interface {
	GetKey() string
	GetName() string
}

// Lored is an item that carries display lines the LoreParser understands
type Lored interface {
	Item
	GetLore() []string
}

// Parser extracts attribute data and requirements from an item
type Parser interface {
	// ParseAttributes returns the attributes an item contributes. An error
	// means the item carries malformed or no attribute data.
	ParseAttributes(it Item) (attribute.Set, error)

	// RequiredLevel returns the level an entity needs to use the item,
	// false when the item has no requirement
	RequiredLevel(it Item) (int, bool)

	// Sites returns the slot names the item is restricted to, nil when it
	// may contribute from any slot
	Sites(it Item) []string
}

// Basic is a plain item with lore lines
type Basic struct {
	Key  string   `json:"key"`
	Name string   `json:"name"`
	Lore []string `json:"lore"`
}

// Emptier is implemented by items whose handle can stand for no item, such as
// a nil pointer stored in an Item interface
type Emptier interface {
	IsEmpty() bool
}

// IsEmpty reports whether it holds no item: a nil interface, or an Emptier
// that says so
func IsEmpty(it Item) bool {
	if it == nil {
		return true
	}
	if e, ok := it.(Emptier); ok {
		return e.IsEmpty()
	}
	return false
}

// IsEmpty reports whether b is a nil pointer
func (b *Basic) IsEmpty() bool { return b == nil }

func (b *Basic) GetKey() string {
	if b == nil {
		return ""
	}
	return b.Key
}

func (b *Basic) GetName() string {
	if b == nil {
		return ""
	}
	return b.Name
}

func (b *Basic) GetLore() []string {
	if b == nil {
		return nil
	}
	return b.Lore
}

// FromLore wraps bare lore lines so they can be evaluated like an item
func FromLore(lines []string) *Basic {
	return &Basic{Key: "lore", Name: "lore", Lore: lines}
}
