package entity_test

import (
	"testing"

	"github.com/KirkDiggler/attribute-engine/internal/domain/entity"
	"github.com/KirkDiggler/attribute-engine/internal/domain/entity/mocks"
	"github.com/KirkDiggler/attribute-engine/internal/domain/item"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestKindLeveler(t *testing.T) {
	leveler := entity.KindLeveler{}

	tests := []struct {
		name     string
		entity   entity.Entity
		expected int
		leveled  bool
	}{
		{name: "player", entity: &entity.Character{ID: "p", Kind: entity.KindPlayer, Level: 12}, expected: 12, leveled: true},
		{name: "default kind is player", entity: &entity.Character{ID: "p", Level: 3}, expected: 3, leveled: true},
		{name: "mob is not applicable", entity: &entity.Character{ID: "m", Kind: entity.KindMob, Level: 40}, leveled: false},
		{name: "projectile is not applicable", entity: &entity.Character{ID: "a", Kind: entity.KindProjectile}, leveled: false},
		{name: "nil entity", entity: nil, leveled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := leveler.EffectiveLevel(tt.entity)
			assert.Equal(t, tt.leveled, ok)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestChainLeveler_FirstAnswerWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	override := mocks.NewMockLeveler(ctrl)

	player := &entity.Character{ID: "p", Kind: entity.KindPlayer, Level: 5}
	mob := &entity.Character{ID: "m", Kind: entity.KindMob}

	override.EXPECT().EffectiveLevel(player).Return(30, true)
	override.EXPECT().EffectiveLevel(mob).Return(0, false)

	chain := entity.ChainLeveler{override, entity.KindLeveler{}}

	level, ok := chain.EffectiveLevel(player)
	assert.True(t, ok)
	assert.Equal(t, 30, level)

	_, ok = chain.EffectiveLevel(mob)
	assert.False(t, ok)
}

func TestLevelerFunc(t *testing.T) {
	fixed := entity.LevelerFunc(func(entity.Entity) (int, bool) { return 7, true })

	level, ok := fixed.EffectiveLevel(&entity.Character{ID: "x", Kind: entity.KindMob})
	assert.True(t, ok)
	assert.Equal(t, 7, level)
}

func TestCharacter_Equip(t *testing.T) {
	c := &entity.Character{ID: "p"}
	sword := &item.Basic{Key: "sword"}

	assert.Nil(t, c.GetEquipped("main-hand"))

	c.Equip("main-hand", sword)
	assert.Equal(t, sword, c.GetEquipped("main-hand"))

	c.Equip("main-hand", nil)
	assert.Nil(t, c.GetEquipped("main-hand"))
}
