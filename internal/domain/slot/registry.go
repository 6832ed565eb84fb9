package slot

import (
	"log"
	"sort"
	"sync"

	"github.com/KirkDiggler/attribute-engine/internal/domain/entity"
	"github.com/KirkDiggler/attribute-engine/internal/domain/item"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
)

// Extractor pulls the candidate item for a site out of an entity. It returns
// nil when the site is empty or the entity has no such position.
type Extractor func(e entity.Entity) item.Item

// Site is a named position that can contribute an item
type Site struct {
	Name string

	// Priority orders evaluation (lower first). It never changes the result
	// because merging is commutative.
	Priority int

	Extract Extractor
}

// EquipmentExtractor reads a position from entities implementing
// entity.Equipped
func EquipmentExtractor(position string) Extractor {
	return func(e entity.Entity) item.Item {
		equipped, ok := e.(entity.Equipped)
		if !ok {
			return nil
		}
		return equipped.GetEquipped(position)
	}
}

// Registry is the ordered set of contribution sites. It is filled once during
// startup; the lock only guards against a late Register racing a List.
type Registry struct {
	mu    sync.RWMutex
	sites []Site
	names map[string]bool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]bool),
	}
}

// Register appends a site. Duplicate or unnamed sites and sites without an
// extractor are configuration errors.
func (r *Registry) Register(site Site) error {
	if site.Name == "" {
		return atterr.Configuration("slot name is required")
	}
	if site.Extract == nil {
		return atterr.Configurationf("slot %q has no extractor", site.Name).
			WithMeta("slot", site.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.names[site.Name] {
		return atterr.Configurationf("slot %q already registered", site.Name).
			WithMeta("slot", site.Name)
	}

	r.names[site.Name] = true
	r.sites = append(r.sites, site)

	// Stable keeps registration order among equal priorities
	sort.SliceStable(r.sites, func(i, j int) bool {
		return r.sites[i].Priority < r.sites[j].Priority
	})

	log.Printf("SlotRegistry: Registered slot %s with priority %d", site.Name, site.Priority)
	return nil
}

// List returns the sites in evaluation order. The slice is a copy.
func (r *Registry) List() []Site {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sites := make([]Site, len(r.sites))
	copy(sites, r.sites)
	return sites
}

// Get returns a site by name
func (r *Registry) Get(name string) (Site, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, site := range r.sites {
		if site.Name == name {
			return site, true
		}
	}
	return Site{}, false
}

// Len returns the number of registered sites
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sites)
}
