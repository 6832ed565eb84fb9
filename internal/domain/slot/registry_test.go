package slot_test

import (
	"testing"

	"github.com/KirkDiggler/attribute-engine/internal/domain/entity"
	"github.com/KirkDiggler/attribute-engine/internal/domain/item"
	"github.com/KirkDiggler/attribute-engine/internal/domain/slot"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bareEntity struct{}

func (bareEntity) GetID() string        { return "bare" }
func (bareEntity) GetKind() entity.Kind { return entity.KindMob }

func TestRegistry_RegisterOrdersByPriority(t *testing.T) {
	registry := slot.NewRegistry()

	require.NoError(t, registry.Register(slot.Site{Name: "chest", Priority: 10, Extract: slot.EquipmentExtractor("chest")}))
	require.NoError(t, registry.Register(slot.Site{Name: "main-hand", Priority: 0, Extract: slot.EquipmentExtractor("main-hand")}))
	require.NoError(t, registry.Register(slot.Site{Name: "helmet", Priority: 10, Extract: slot.EquipmentExtractor("helmet")}))

	var names []string
	for _, site := range registry.List() {
		names = append(names, site.Name)
	}
	assert.Equal(t, []string{"main-hand", "chest", "helmet"}, names)
	assert.Equal(t, 3, registry.Len())
}

func TestRegistry_RejectsBadSites(t *testing.T) {
	registry := slot.NewRegistry()
	require.NoError(t, registry.Register(slot.Site{Name: "chest", Extract: slot.EquipmentExtractor("chest")}))

	tests := []struct {
		name string
		site slot.Site
	}{
		{name: "duplicate", site: slot.Site{Name: "chest", Extract: slot.EquipmentExtractor("chest")}},
		{name: "empty name", site: slot.Site{Extract: slot.EquipmentExtractor("x")}},
		{name: "no extractor", site: slot.Site{Name: "boots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := registry.Register(tt.site)
			require.Error(t, err)
			assert.True(t, atterr.IsConfiguration(err))
		})
	}

	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_ListIsACopy(t *testing.T) {
	registry := slot.NewRegistry()
	require.NoError(t, registry.Register(slot.Site{Name: "chest", Extract: slot.EquipmentExtractor("chest")}))

	sites := registry.List()
	sites[0].Name = "tampered"

	site, ok := registry.Get("chest")
	assert.True(t, ok)
	assert.Equal(t, "chest", site.Name)

	_, ok = registry.Get("tampered")
	assert.False(t, ok)
}

func TestEquipmentExtractor(t *testing.T) {
	helmet := &item.Basic{Key: "helmet"}
	player := &entity.Character{ID: "p"}
	player.Equip("head", helmet)

	extract := slot.EquipmentExtractor("head")

	assert.Equal(t, helmet, extract(player))
	assert.Nil(t, slot.EquipmentExtractor("feet")(player))
	assert.Nil(t, extract(bareEntity{}))
}
