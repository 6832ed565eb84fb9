package testutils

import (
	"fmt"

	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	"github.com/KirkDiggler/attribute-engine/internal/domain/entity"
	"github.com/KirkDiggler/attribute-engine/internal/domain/item"
)

// CreateTestPlayer creates a player with no equipment
func CreateTestPlayer(id string, level int) *entity.Character {
	return &entity.Character{
		ID:        id,
		Kind:      entity.KindPlayer,
		Level:     level,
		Equipment: make(map[string]*item.Basic),
	}
}

// CreateTestMob creates a mob carrying intrinsic attributes
func CreateTestMob(id string, base attribute.Set) *entity.Character {
	return &entity.Character{
		ID:         id,
		Kind:       entity.KindMob,
		Equipment:  make(map[string]*item.Basic),
		Attributes: base,
	}
}

// CreateTestItem creates an item whose lore carries the given lines
func CreateTestItem(key string, lore ...string) *item.Basic {
	return &item.Basic{
		Key:  key,
		Name: key,
		Lore: lore,
	}
}

// CreateTestSword creates a main-hand weapon with the given attack bonus
func CreateTestSword(attack int) *item.Basic {
	return CreateTestItem("sword", fmt.Sprintf("Attack: +%d", attack), "Slot: main-hand")
}

// CreateTestChestplate creates chest armour gated behind a level requirement
func CreateTestChestplate(defense, requiredLevel int) *item.Basic {
	return CreateTestItem("chestplate",
		fmt.Sprintf("Defense: +%d", defense),
		fmt.Sprintf("Level Requirement: %d", requiredLevel),
		"Slot: chest",
	)
}
