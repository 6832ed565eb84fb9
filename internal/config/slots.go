package config

import (
	"os"

	"gopkg.in/yaml.v3"

	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
)

// SlotDefinition declares one equipment slot. Position names where on the
// entity the item is read from and defaults to Name.
type SlotDefinition struct {
	Name     string `yaml:"name"`
	Priority int    `yaml:"priority"`
	Position string `yaml:"position"`
}

type slotsFile struct {
	Slots []SlotDefinition `yaml:"slots"`
}

// DefaultSlots returns the built-in slot layout used when no file is configured
func DefaultSlots() []SlotDefinition {
	return []SlotDefinition{
		{Name: "main-hand", Priority: 0, Position: "main-hand"},
		{Name: "off-hand", Priority: 1, Position: "off-hand"},
		{Name: "helmet", Priority: 2, Position: "helmet"},
		{Name: "chest", Priority: 3, Position: "chest"},
		{Name: "leggings", Priority: 4, Position: "leggings"},
		{Name: "boots", Priority: 5, Position: "boots"},
	}
}

// LoadSlots reads slot definitions from a YAML file
func LoadSlots(path string) ([]SlotDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, atterr.WrapWithCode(err, atterr.CodeConfiguration, "failed to read slots file").
			WithMeta("path", path)
	}

	defs, err := ParseSlots(data)
	if err != nil {
		return nil, atterr.Wrap(err, "invalid slots file").WithMeta("path", path)
	}
	return defs, nil
}

// ParseSlots decodes and validates YAML slot definitions
func ParseSlots(data []byte) ([]SlotDefinition, error) {
	var file slotsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, atterr.WrapWithCode(err, atterr.CodeConfiguration, "failed to decode slot definitions")
	}

	seen := make(map[string]bool, len(file.Slots))
	for i := range file.Slots {
		def := &file.Slots[i]
		if def.Name == "" {
			return nil, atterr.Configurationf("slot %d has no name", i)
		}
		if def.Priority < 0 {
			return nil, atterr.Configurationf("slot %s has negative priority", def.Name).
				WithMeta("slot", def.Name)
		}
		if seen[def.Name] {
			return nil, atterr.Configurationf("slot %s defined twice", def.Name).
				WithMeta("slot", def.Name)
		}
		seen[def.Name] = true

		if def.Position == "" {
			def.Position = def.Name
		}
	}

	return file.Slots, nil
}
