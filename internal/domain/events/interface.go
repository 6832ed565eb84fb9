package events

//go:generate mockgen -destination=mocks/mock_listener.go -package=mocks github.com/KirkDiggler/attribute-engine/internal/domain/events Listener

// Listener handles events it subscribed to
type Listener interface {
	HandleEvent(event Event) error

	// Priority orders delivery; lower runs first
	Priority() int
}

// ListenerFunc adapts a function to a Listener with priority 0
type ListenerFunc func(event Event) error

// HandleEvent calls f(event)
func (f ListenerFunc) HandleEvent(event Event) error {
	return f(event)
}

// Priority returns 0
func (f ListenerFunc) Priority() int {
	return 0
}

// Bus is the interface for event bus implementations
type Bus interface {
	// Subscribe adds a listener for a specific event type and returns a
	// subscription ID for Unsubscribe
	Subscribe(eventType EventType, listener Listener) string

	// Unsubscribe removes a subscription, reporting whether it existed
	Unsubscribe(subscriptionID string) bool

	// Emit sends an event to all registered listeners
	Emit(event Event) error

	// Clear removes all listeners
	Clear()

	// ListenerCount returns the number of listeners for an event type
	ListenerCount(eventType EventType) int
}
