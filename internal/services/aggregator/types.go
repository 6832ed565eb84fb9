package aggregator

import (
	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	"github.com/KirkDiggler/attribute-engine/internal/domain/condition"
	"github.com/KirkDiggler/attribute-engine/internal/domain/item"
)

// Outcome reports what happened to one candidate source
type Outcome string

const (
	// OutcomeIncluded means the source passed its conditions and contributed
	OutcomeIncluded Outcome = "included"

	// OutcomeExcluded means the source failed a condition and was left out
	OutcomeExcluded Outcome = "excluded"

	// OutcomeEmpty means there was no source, or it carried nothing parseable
	OutcomeEmpty Outcome = "empty"
)

// ItemsResult is the answer to a multi-source query. Outcomes is positional:
// Outcomes[i] describes the i-th candidate.
type ItemsResult struct {
	Set      attribute.Set
	Outcomes []Outcome
}

// Excluded returns the positions of candidates that failed their conditions
func (r *ItemsResult) Excluded() []int {
	var excluded []int
	for i, outcome := range r.Outcomes {
		if outcome == OutcomeExcluded {
			excluded = append(excluded, i)
		}
	}
	return excluded
}

// SiteContribution is one slot's part of an entity aggregation
type SiteContribution struct {
	Site       string
	Source     item.Item
	Outcome    Outcome
	Facts      condition.Facts
	Attributes attribute.Set
}

// Breakdown shows every part that fed an entity's effective set
type Breakdown struct {
	EntityID   string
	Filter     condition.SiteFilter
	Intrinsic  attribute.Set
	Sites      []SiteContribution
	Scoped     attribute.Set
	Projectile attribute.Set
	Total      attribute.Set
}
