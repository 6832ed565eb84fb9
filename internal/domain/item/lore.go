package item

import (
	"log"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
)

// DefaultLoreLabels maps display labels to attribute keys
var DefaultLoreLabels = map[string]attribute.Key{
	"attack":          attribute.KeyAttack,
	"damage":          attribute.KeyAttack,
	"defense":         attribute.KeyDefense,
	"health":          attribute.KeyHealth,
	"health regen":    attribute.KeyHealthRegen,
	"crit rate":       attribute.KeyCritRate,
	"crit damage":     attribute.KeyCritDamage,
	"hit rate":        attribute.KeyHitRate,
	"dodge":           attribute.KeyDodge,
	"life steal":      attribute.KeyLifeSteal,
	"armor pierce":    attribute.KeyArmorPierce,
	"reflection":      attribute.KeyReflection,
	"movement speed":  attribute.KeyMovementSpeed,
	"attack speed":    attribute.KeyAttackSpeed,
	"experience rate": attribute.KeyExperienceRate,
}

// LoreParserConfig configures the labels a LoreParser recognizes
type LoreParserConfig struct {
	// Labels maps a display label to the attribute it feeds
	Labels map[string]attribute.Key

	// LevelLabels mark the level requirement line
	LevelLabels []string

	// SiteLabels mark the slot restriction line (comma separated slot names)
	SiteLabels []string
}

// LoreParser reads attributes from "Label: value" lore lines, e.g.
//
//	§cAttack: +5
//	Crit Rate: 2.5%
//	Level Requirement: 10
//	Slot: main-hand, off-hand
type LoreParser struct {
	labels      map[string]attribute.Key
	levelLabels map[string]bool
	siteLabels  map[string]bool
}

// NewLoreParser creates a lore parser. A nil config uses the defaults.
func NewLoreParser(cfg *LoreParserConfig) *LoreParser {
	if cfg == nil {
		cfg = &LoreParserConfig{}
	}

	labels := cfg.Labels
	if len(labels) == 0 {
		labels = DefaultLoreLabels
	}
	levelLabels := cfg.LevelLabels
	if len(levelLabels) == 0 {
		levelLabels = []string{"level requirement", "required level"}
	}
	siteLabels := cfg.SiteLabels
	if len(siteLabels) == 0 {
		siteLabels = []string{"slot", "slots"}
	}

	p := &LoreParser{
		labels:      make(map[string]attribute.Key, len(labels)),
		levelLabels: make(map[string]bool, len(levelLabels)),
		siteLabels:  make(map[string]bool, len(siteLabels)),
	}
	for label, key := range labels {
		p.labels[foldLabel(label)] = key
	}
	for _, label := range levelLabels {
		p.levelLabels[foldLabel(label)] = true
	}
	for _, label := range siteLabels {
		p.siteLabels[foldLabel(label)] = true
	}

	return p
}

// ParseAttributes implements Parser
func (p *LoreParser) ParseAttributes(it Item) (attribute.Set, error) {
	lored, ok := it.(Lored)
	if !ok || IsEmpty(it) {
		return attribute.Empty(), atterr.NotFound("item carries no lore")
	}

	set, err := p.ParseLines(lored.GetLore())
	if err != nil {
		return attribute.Empty(), atterr.Wrapf(err, "failed to parse lore of %s", it.GetKey()).
			WithMeta("item_key", it.GetKey())
	}
	return set, nil
}

// ParseLines folds every recognized attribute line into one set.
// Lines with unknown labels are ignored; a known label with a malformed
// number fails the whole set.
func (p *LoreParser) ParseLines(lines []string) (attribute.Set, error) {
	acc := attribute.NewAccumulator()
	for _, line := range lines {
		label, value, ok := splitLine(line)
		if !ok {
			continue
		}
		key, known := p.labels[label]
		if !known {
			continue
		}

		magnitude, err := parseMagnitude(value)
		if err != nil {
			return attribute.Empty(), atterr.Validationf("invalid value %q for %s", value, label).
				WithMeta("line", line)
		}
		acc.Add(attribute.Empty().With(key, magnitude))
	}
	return acc.Set(), nil
}

// RequiredLevel implements Parser
func (p *LoreParser) RequiredLevel(it Item) (int, bool) {
	lored, ok := it.(Lored)
	if !ok {
		return 0, false
	}

	for _, line := range lored.GetLore() {
		label, value, ok := splitLine(line)
		if !ok || !p.levelLabels[label] {
			continue
		}
		level, err := strconv.Atoi(strings.TrimPrefix(value, "+"))
		if err != nil || level < 0 {
			log.Printf("LoreParser: Ignoring malformed level requirement %q on %s", value, it.GetKey())
			return 0, false
		}
		return level, true
	}
	return 0, false
}

// Sites implements Parser
func (p *LoreParser) Sites(it Item) []string {
	lored, ok := it.(Lored)
	if !ok {
		return nil
	}

	var sites []string
	for _, line := range lored.GetLore() {
		label, value, ok := splitLine(line)
		if !ok || !p.siteLabels[label] {
			continue
		}
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				sites = append(sites, name)
			}
		}
	}
	return sites
}

// splitLine strips colour codes and returns the folded label and raw value
func splitLine(line string) (string, string, bool) {
	line = stripColour(line)
	label, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	label = foldLabel(label)
	value = strings.TrimSpace(value)
	if label == "" || value == "" {
		return "", "", false
	}
	return label, value, true
}

func foldLabel(label string) string {
	return cases.Fold().String(strings.Join(strings.Fields(label), " "))
}

// stripColour drops section-sign formatting codes such as §a or §l
func stripColour(line string) string {
	if !strings.ContainsRune(line, '§') {
		return line
	}

	var b strings.Builder
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '§' {
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// parseMagnitude accepts "+5", "-2.5", "10%"; the percent sign is cosmetic
func parseMagnitude(value string) (float64, error) {
	value = strings.TrimSpace(strings.TrimSuffix(value, "%"))
	value = strings.TrimPrefix(value, "+")
	magnitude, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return 0, strconv.ErrSyntax
	}
	return magnitude, nil
}
