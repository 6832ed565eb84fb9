package condition

import (
	"strconv"

	"github.com/KirkDiggler/attribute-engine/internal/domain/entity"
	"github.com/KirkDiggler/attribute-engine/internal/domain/item"
)

// Context is the input of a single condition check
type Context struct {
	// Entity is the acting entity; nil skips entity-dependent checks
	Entity entity.Entity

	// Site is the contribution site being evaluated
	Site SiteFilter

	// Source is the candidate item
	Source item.Item
}

// Level is a level value with a sentinel for "none"
type Level int

const (
	// NoRequirement is the source level of an item without a level requirement
	NoRequirement Level = -1

	// NotApplicable is the entity level of kinds that do not level
	NotApplicable Level = -1
)

// IsSet reports whether the level holds a real value
func (l Level) IsSet() bool {
	return l >= 0
}

func (l Level) String() string {
	if !l.IsSet() {
		return "none"
	}
	return strconv.Itoa(int(l))
}

// Facts are the derived values of a Context
type Facts struct {
	SourceLevel Level
	EntityLevel Level
}
