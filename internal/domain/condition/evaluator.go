package condition

import (
	"log"
	"sync"

	"github.com/KirkDiggler/attribute-engine/internal/domain/entity"
	"github.com/KirkDiggler/attribute-engine/internal/domain/item"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
)

// Evaluator decides whether a source counts for an entity at a site
type Evaluator struct {
	parser  item.Parser
	leveler entity.Leveler

	mu    sync.RWMutex
	rules []Rule
	names map[string]bool
}

// EvaluatorConfig holds the collaborators of an evaluator
type EvaluatorConfig struct {
	Parser  item.Parser
	Leveler entity.Leveler

	// SkipDefaultRules leaves the rule list empty for callers that register
	// their own
	SkipDefaultRules bool
}

// NewEvaluator creates an evaluator with the level and site rules registered
func NewEvaluator(cfg *EvaluatorConfig) (*Evaluator, error) {
	if cfg == nil || cfg.Parser == nil {
		return nil, atterr.Configuration("evaluator requires an item parser")
	}

	leveler := cfg.Leveler
	if leveler == nil {
		leveler = entity.KindLeveler{}
	}

	e := &Evaluator{
		parser:  cfg.Parser,
		leveler: leveler,
		names:   make(map[string]bool),
	}

	if !cfg.SkipDefaultRules {
		for _, rule := range []Rule{NewLevelRule(cfg.Parser, leveler), NewSiteRule(cfg.Parser)} {
			if err := e.Register(rule); err != nil {
				return nil, err
			}
		}
	}

	return e, nil
}

// Register appends a rule. Rules run in registration order.
func (e *Evaluator) Register(rule Rule) error {
	if rule == nil || rule.Name() == "" {
		return atterr.Configuration("condition rule must have a name")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.names[rule.Name()] {
		return atterr.Configurationf("condition rule %q already registered", rule.Name()).
			WithMeta("rule", rule.Name())
	}
	e.names[rule.Name()] = true
	e.rules = append(e.rules, rule)

	log.Printf("ConditionEvaluator: Registered rule %s", rule.Name())
	return nil
}

// Evaluate runs every rule that applies to the context's site. An empty source
// (nil, or a typed nil handle) has nothing to restrict and passes.
func (e *Evaluator) Evaluate(ctx Context) bool {
	if item.IsEmpty(ctx.Source) {
		return true
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, rule := range e.rules {
		if !rule.AppliesTo(ctx.Site) {
			continue
		}
		if !rule.Check(ctx) {
			return false
		}
	}
	return true
}

// Facts returns the derived levels of a context
func (e *Evaluator) Facts(ctx Context) Facts {
	return Facts{
		SourceLevel: e.SourceLevel(ctx.Source),
		EntityLevel: e.EntityLevel(ctx.Entity),
	}
}

// SourceLevel returns the level an item requires, NoRequirement when none
func (e *Evaluator) SourceLevel(source item.Item) Level {
	return sourceLevel(e.parser, source)
}

// EntityLevel returns the entity's effective level, NotApplicable for kinds
// without levels
func (e *Evaluator) EntityLevel(ent entity.Entity) Level {
	return entityLevel(e.leveler, ent)
}
