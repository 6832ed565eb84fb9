package aggregator

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
	"github.com/KirkDiggler/attribute-engine/internal/domain/condition"
	"github.com/KirkDiggler/attribute-engine/internal/domain/consumer"
	"github.com/KirkDiggler/attribute-engine/internal/domain/entity"
	"github.com/KirkDiggler/attribute-engine/internal/domain/events"
	"github.com/KirkDiggler/attribute-engine/internal/domain/item"
	"github.com/KirkDiggler/attribute-engine/internal/domain/slot"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
	"github.com/KirkDiggler/attribute-engine/internal/repositories/projectiles"
	"github.com/KirkDiggler/attribute-engine/internal/repositories/scoped"
)

const defaultRefreshConcurrency = 8

// Service folds equipment, scoped consumer data and projectile attachments
// into an entity's effective attribute set
type Service interface {
	// ComputeForEntity walks every registered slot matching filter, then adds
	// the entity's scoped data and projectile attachment
	ComputeForEntity(ctx context.Context, e entity.Entity, filter condition.SiteFilter) (attribute.Set, error)

	// Explain runs the same walk as ComputeForEntity and reports each part
	Explain(ctx context.Context, e entity.Entity, filter condition.SiteFilter) (*Breakdown, error)

	// ComputeForItems evaluates loose candidates. Failing candidates are
	// excluded and reported, never fatal.
	ComputeForItems(e entity.Entity, filter condition.SiteFilter, items ...item.Item) *ItemsResult

	// ComputeForLore evaluates bare lore lines as a single source
	ComputeForLore(e entity.Entity, filter condition.SiteFilter, lines []string) attribute.Set

	// IsUsable reports whether the entity may use the item
	IsUsable(e entity.Entity, filter condition.SiteFilter, source item.Item) bool

	ItemLevel(source item.Item) condition.Level
	EntityLevel(e entity.Entity) condition.Level

	// Sites lists registered slots in evaluation order
	Sites() []slot.Site

	RegisterConsumer(name string) (consumer.Key, error)

	// UnregisterConsumer removes the consumer and its data on every entity
	UnregisterConsumer(ctx context.Context, key consumer.Key) error

	SetEntityData(ctx context.Context, key consumer.Key, entityID string, set attribute.Set) error
	GetEntityData(ctx context.Context, key consumer.Key, entityID string) (attribute.Set, bool, error)
	HasEntityData(ctx context.Context, key consumer.Key, entityID string) (bool, error)
	RemoveEntityData(ctx context.Context, key consumer.Key, entityID string) (attribute.Set, bool, error)

	// GetScopedData folds every consumer's entry for the entity
	GetScopedData(ctx context.Context, entityID string) (attribute.Set, error)

	// DropEntity releases scoped data, projectile attachment and cache entry
	DropEntity(ctx context.Context, entityID string) error

	AttachProjectile(ctx context.Context, projectileID string, set attribute.Set) error
	TakeProjectile(ctx context.Context, projectileID string, consume bool) (attribute.Set, bool, error)

	// LaunchProjectile attaches the shooter's all-sites aggregate to a new
	// projectile and returns it
	LaunchProjectile(ctx context.Context, shooter entity.Entity, projectileID string) (attribute.Set, error)

	// UpdateEntity recomputes, caches and announces an entity's set
	UpdateEntity(ctx context.Context, e entity.Entity) (attribute.Set, error)

	// CachedEntityData returns the set stored by the last UpdateEntity
	CachedEntityData(entityID string) (attribute.Set, bool)

	// RefreshAll updates many entities concurrently
	RefreshAll(ctx context.Context, entities []entity.Entity) error
}

type service struct {
	evaluator   *condition.Evaluator
	parser      item.Parser
	slots       *slot.Registry
	consumers   *consumer.Registry
	scoped      scoped.Repository
	projectiles projectiles.Repository
	eventBus    events.Bus
	concurrency int

	mu    sync.RWMutex
	cache map[string]attribute.Set
}

// ServiceConfig holds configuration for the aggregator service
type ServiceConfig struct {
	Evaluator *condition.Evaluator
	Parser    item.Parser
	Slots     *slot.Registry
	Consumers *consumer.Registry

	// Optional - in-memory repositories are used when nil
	Scoped      scoped.Repository
	Projectiles projectiles.Repository

	// Optional - no events are emitted when nil
	EventBus events.Bus

	// RefreshConcurrency caps RefreshAll fan-out (default 8)
	RefreshConcurrency int
}

// NewService creates a new aggregator service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Evaluator == nil {
		panic("evaluator is required")
	}
	if cfg.Parser == nil {
		panic("parser is required")
	}
	if cfg.Slots == nil {
		panic("slot registry is required")
	}
	if cfg.Consumers == nil {
		panic("consumer registry is required")
	}

	svc := &service{
		evaluator:   cfg.Evaluator,
		parser:      cfg.Parser,
		slots:       cfg.Slots,
		consumers:   cfg.Consumers,
		scoped:      cfg.Scoped,
		projectiles: cfg.Projectiles,
		eventBus:    cfg.EventBus,
		concurrency: cfg.RefreshConcurrency,
		cache:       make(map[string]attribute.Set),
	}

	if svc.scoped == nil {
		svc.scoped = scoped.NewInMemoryRepository()
	}
	if svc.projectiles == nil {
		svc.projectiles = projectiles.NewInMemoryRepository()
	}
	if svc.concurrency < 1 {
		svc.concurrency = defaultRefreshConcurrency
	}

	return svc
}

// ComputeForEntity returns the entity's effective attribute set
func (s *service) ComputeForEntity(ctx context.Context, e entity.Entity, filter condition.SiteFilter) (attribute.Set, error) {
	breakdown, err := s.Explain(ctx, e, filter)
	if err != nil {
		return attribute.Empty(), err
	}
	return breakdown.Total, nil
}

// Explain walks the entity's sources and records each contribution
func (s *service) Explain(ctx context.Context, e entity.Entity, filter condition.SiteFilter) (*Breakdown, error) {
	if e == nil {
		return nil, atterr.InvalidArgument("entity is required")
	}

	breakdown := &Breakdown{
		EntityID:   e.GetID(),
		Filter:     filter,
		Intrinsic:  attribute.Empty(),
		Scoped:     attribute.Empty(),
		Projectile: attribute.Empty(),
	}

	acc := attribute.NewAccumulator()
	if intrinsic, ok := e.(entity.Intrinsic); ok {
		breakdown.Intrinsic = intrinsic.GetBaseAttributes()
		acc.Add(breakdown.Intrinsic)
	}

	for _, site := range s.slots.List() {
		if !filter.Matches(site.Name) {
			continue
		}

		source := site.Extract(e)
		if item.IsEmpty(source) {
			source = nil
		}
		contribution := SiteContribution{
			Site:       site.Name,
			Source:     source,
			Attributes: attribute.Empty(),
		}
		cctx := condition.Context{
			Entity: e,
			Site:   condition.Site(site.Name),
			Source: contribution.Source,
		}
		if contribution.Source != nil {
			contribution.Facts = s.evaluator.Facts(cctx)
		}
		contribution.Attributes, contribution.Outcome = s.contribute(cctx)
		acc.Add(contribution.Attributes)

		breakdown.Sites = append(breakdown.Sites, contribution)
	}

	scopedSet, err := s.scoped.GetMerged(ctx, e.GetID())
	if err != nil {
		return nil, atterr.Wrap(err, "failed to read scoped attributes").
			WithMeta("operation", "ComputeForEntity")
	}
	breakdown.Scoped = scopedSet
	acc.Add(scopedSet)

	projectile, ok, err := s.projectiles.Take(ctx, e.GetID(), false)
	if err != nil {
		return nil, atterr.Wrap(err, "failed to read projectile attributes").
			WithMeta("operation", "ComputeForEntity")
	}
	if ok {
		breakdown.Projectile = projectile
		acc.Add(projectile)
	}

	breakdown.Total = acc.Set()
	return breakdown, nil
}

// contribute evaluates one candidate. Parse failures contribute nothing so
// one corrupt source cannot abort the rest of the aggregation.
func (s *service) contribute(cctx condition.Context) (attribute.Set, Outcome) {
	if item.IsEmpty(cctx.Source) {
		return attribute.Empty(), OutcomeEmpty
	}

	if !s.evaluator.Evaluate(cctx) {
		log.Printf("AttributeService: Excluded %s at %s for entity %s",
			cctx.Source.GetKey(), cctx.Site, entityID(cctx.Entity))
		return attribute.Empty(), OutcomeExcluded
	}

	set, err := s.parser.ParseAttributes(cctx.Source)
	if err != nil {
		log.Printf("AttributeService: Ignoring unparseable %s: %v", cctx.Source.GetKey(), err)
		return attribute.Empty(), OutcomeEmpty
	}
	if !set.IsValid() {
		return set, OutcomeEmpty
	}
	return set, OutcomeIncluded
}

// ComputeForItems folds the passing candidates and reports each outcome
func (s *service) ComputeForItems(e entity.Entity, filter condition.SiteFilter, items ...item.Item) *ItemsResult {
	result := &ItemsResult{
		Outcomes: make([]Outcome, len(items)),
	}

	acc := attribute.NewAccumulator()
	for i, source := range items {
		set, outcome := s.contribute(condition.Context{
			Entity: e,
			Site:   filter,
			Source: source,
		})
		result.Outcomes[i] = outcome
		acc.Add(set)
	}

	result.Set = acc.Set()
	return result
}

// ComputeForLore evaluates lore lines as one source
func (s *service) ComputeForLore(e entity.Entity, filter condition.SiteFilter, lines []string) attribute.Set {
	return s.ComputeForItems(e, filter, item.FromLore(lines)).Set
}

// IsUsable reports whether the entity passes the item's conditions
func (s *service) IsUsable(e entity.Entity, filter condition.SiteFilter, source item.Item) bool {
	return s.evaluator.Evaluate(condition.Context{
		Entity: e,
		Site:   filter,
		Source: source,
	})
}

// ItemLevel returns the level an item requires
func (s *service) ItemLevel(source item.Item) condition.Level {
	return s.evaluator.SourceLevel(source)
}

// EntityLevel returns the entity's effective level
func (s *service) EntityLevel(e entity.Entity) condition.Level {
	return s.evaluator.EntityLevel(e)
}

// Sites lists registered slots
func (s *service) Sites() []slot.Site {
	return s.slots.List()
}

func entityID(e entity.Entity) string {
	if e == nil {
		return "<none>"
	}
	return e.GetID()
}

// emit publishes an event. Listener failures are logged; they never undo the
// operation that produced the event.
func (s *service) emit(event events.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Emit(event); err != nil {
		log.Printf("AttributeService: Listener failed for %s on %s: %v", event.GetType(), event.GetEntityID(), err)
	}
}

// UpdateEntity recomputes the entity's all-sites set, caches it and emits
// attributes.updated
func (s *service) UpdateEntity(ctx context.Context, e entity.Entity) (attribute.Set, error) {
	set, err := s.ComputeForEntity(ctx, e, condition.AllSites())
	if err != nil {
		return attribute.Empty(), err
	}

	s.mu.Lock()
	s.cache[e.GetID()] = set
	s.mu.Unlock()

	s.emit(events.NewAttributesUpdatedEvent(e.GetID(), set))
	return set, nil
}

// CachedEntityData returns the last computed set for an entity
func (s *service) CachedEntityData(entityID string) (attribute.Set, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.cache[entityID]
	return set, ok
}

// RefreshAll updates every entity, at most RefreshConcurrency at a time. The
// first failure cancels the remaining work.
func (s *service) RefreshAll(ctx context.Context, entities []entity.Entity) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, e := range entities {
		if e == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := s.UpdateEntity(gctx, e)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return atterr.Wrap(err, "failed to refresh entities").
			WithMeta("operation", "RefreshAll")
	}
	return nil
}
