package consumer

import (
	"log"
	"sort"
	"sync"

	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
	"github.com/KirkDiggler/attribute-engine/internal/uuid"
)

// Registry issues consumer keys, one per registrant name
type Registry struct {
	mu     sync.RWMutex
	uuids  uuid.Generator
	byName map[string]Key
	byID   map[string]Key
}

// NewRegistry creates a registry. A nil generator uses random UUIDs.
func NewRegistry(generator uuid.Generator) *Registry {
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}
	return &Registry{
		uuids:  generator,
		byName: make(map[string]Key),
		byID:   make(map[string]Key),
	}
}

// Register issues a key for a registrant. Registering the same name twice is a
// configuration error; a plugin must unregister before registering again.
func (r *Registry) Register(name string) (Key, error) {
	if name == "" {
		return Key{}, atterr.Configuration("consumer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return Key{}, atterr.Configurationf("consumer %q already registered", name).
			WithMeta("consumer", name)
	}

	key := Key{id: r.uuids.New(), name: name}
	r.byName[name] = key
	r.byID[key.id] = key

	log.Printf("ConsumerRegistry: Registered %s", key)
	return key, nil
}

// Lookup returns the key issued under an ID
func (r *Registry) Lookup(id string) (Key, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.byID[id]
	return key, ok
}

// Unregister forgets the key issued under key's ID. It reports whether the key
// was registered. The name released is the one stored at registration, not the
// caller's copy.
func (r *Registry) Unregister(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[key.id]
	if !ok {
		return false
	}
	delete(r.byID, stored.id)
	delete(r.byName, stored.name)

	log.Printf("ConsumerRegistry: Unregistered %s", stored)
	return true
}

// List returns every registered key ordered by name
func (r *Registry) List() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]Key, 0, len(r.byID))
	for _, key := range r.byID {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].name < keys[j].name })
	return keys
}
