package condition

import (
	"strings"

	"github.com/KirkDiggler/attribute-engine/internal/domain/entity"
	"github.com/KirkDiggler/attribute-engine/internal/domain/item"
)

// Rule is one check the evaluator runs. A rule only runs for contexts whose
// site it applies to.
type Rule interface {
	// Name identifies the rule; names are unique per evaluator
	Name() string

	// AppliesTo reports whether the rule runs for the given site
	AppliesTo(site SiteFilter) bool

	// Check returns false when the source must not count
	Check(ctx Context) bool
}

// LevelRule gates a source on its level requirement. It runs for every site.
type LevelRule struct {
	parser  item.Parser
	leveler entity.Leveler
}

// NewLevelRule creates the level requirement rule
func NewLevelRule(parser item.Parser, leveler entity.Leveler) *LevelRule {
	return &LevelRule{parser: parser, leveler: leveler}
}

func (r *LevelRule) Name() string { return "level" }

func (r *LevelRule) AppliesTo(SiteFilter) bool { return true }

// Check passes when the source has no requirement, the entity is absent or
// not leveled, or the entity level reaches the requirement
func (r *LevelRule) Check(ctx Context) bool {
	facts := r.facts(ctx)
	if !facts.SourceLevel.IsSet() || !facts.EntityLevel.IsSet() {
		return true
	}
	return facts.EntityLevel >= facts.SourceLevel
}

func (r *LevelRule) facts(ctx Context) Facts {
	return Facts{
		SourceLevel: sourceLevel(r.parser, ctx.Source),
		EntityLevel: entityLevel(r.leveler, ctx.Entity),
	}
}

// SiteRule rejects a source evaluated in a slot it is not made for. It only
// runs when a specific site is evaluated; an AllSites check has no slot to
// compare against.
type SiteRule struct {
	parser item.Parser
}

// NewSiteRule creates the applicable-slot rule
func NewSiteRule(parser item.Parser) *SiteRule {
	return &SiteRule{parser: parser}
}

func (r *SiteRule) Name() string { return "site" }

func (r *SiteRule) AppliesTo(site SiteFilter) bool { return !site.IsAll() }

func (r *SiteRule) Check(ctx Context) bool {
	declared := r.parser.Sites(ctx.Source)
	if len(declared) == 0 {
		return true
	}
	for _, name := range declared {
		if strings.EqualFold(name, ctx.Site.Name()) {
			return true
		}
	}
	return false
}

func sourceLevel(parser item.Parser, source item.Item) Level {
	if item.IsEmpty(source) {
		return NoRequirement
	}
	level, ok := parser.RequiredLevel(source)
	if !ok {
		return NoRequirement
	}
	return Level(level)
}

func entityLevel(leveler entity.Leveler, e entity.Entity) Level {
	if e == nil {
		return NotApplicable
	}
	level, ok := leveler.EffectiveLevel(e)
	if !ok || level < 0 {
		return NotApplicable
	}
	return Level(level)
}
