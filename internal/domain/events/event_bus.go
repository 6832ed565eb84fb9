package events

import (
	"sort"
	"sync"

	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
	"github.com/KirkDiggler/attribute-engine/internal/uuid"
)

type subscription struct {
	id       string
	listener Listener
}

// EventBus manages event listeners and dispatches events
type EventBus struct {
	listeners map[EventType][]subscription
	byID      map[string]EventType
	ids       uuid.Generator
	mu        sync.RWMutex
}

// NewEventBus creates a new event bus. A nil generator uses random UUIDs for
// subscription IDs.
func NewEventBus(ids uuid.Generator) *EventBus {
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}
	return &EventBus{
		listeners: make(map[EventType][]subscription),
		byID:      make(map[string]EventType),
		ids:       ids,
	}
}

// Subscribe adds a listener for a specific event type
func (eb *EventBus) Subscribe(eventType EventType, listener Listener) string {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	id := eb.ids.New()
	eb.listeners[eventType] = append(eb.listeners[eventType], subscription{
		id:       id,
		listener: listener,
	})
	eb.byID[id] = eventType
	return id
}

// Unsubscribe removes a subscription by ID
func (eb *EventBus) Unsubscribe(subscriptionID string) bool {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eventType, ok := eb.byID[subscriptionID]
	if !ok {
		return false
	}
	delete(eb.byID, subscriptionID)

	subs := eb.listeners[eventType]
	for i, sub := range subs {
		if sub.id == subscriptionID {
			eb.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(eb.listeners[eventType]) == 0 {
		delete(eb.listeners, eventType)
	}
	return true
}

// Emit fires an event to all registered listeners in priority order. Equal
// priorities run in subscription order. The first listener error stops
// delivery, as does cancellation.
func (eb *EventBus) Emit(event Event) error {
	if event == nil {
		return atterr.InvalidArgument("cannot emit nil event")
	}

	subs := eb.getListeners(event.GetType())
	if len(subs) == 0 {
		return nil
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].listener.Priority() < subs[j].listener.Priority()
	})

	for _, sub := range subs {
		if err := sub.listener.HandleEvent(event); err != nil {
			return atterr.Wrapf(err, "error handling event %s", event.GetType()).
				WithMeta("subscription_id", sub.id)
		}
		if event.IsCancelled() {
			break
		}
	}

	return nil
}

// getListeners returns a copy of listeners for a specific event type
func (eb *EventBus) getListeners(eventType EventType) []subscription {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	original := eb.listeners[eventType]
	if len(original) == 0 {
		return nil
	}

	subs := make([]subscription, len(original))
	copy(subs, original)
	return subs
}

// Clear removes all listeners
func (eb *EventBus) Clear() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.listeners = make(map[EventType][]subscription)
	eb.byID = make(map[string]EventType)
}

// ListenerCount returns the number of listeners for a specific event type
func (eb *EventBus) ListenerCount(eventType EventType) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	return len(eb.listeners[eventType])
}

// TotalListenerCount returns the total number of listeners across all event types
func (eb *EventBus) TotalListenerCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	return len(eb.byID)
}
