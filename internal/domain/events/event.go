package events

import (
	"github.com/KirkDiggler/attribute-engine/internal/domain/attribute"
)

// Event is a notification dispatched through the Bus
type Event interface {
	GetType() EventType

	// GetEntityID is empty for events not tied to an entity
	GetEntityID() string

	IsCancelled() bool
	Cancel()
}

// BaseEvent carries the fields every event shares
type BaseEvent struct {
	Type      EventType
	EntityID  string
	Cancelled bool
}

// GetType returns the event type
func (e *BaseEvent) GetType() EventType {
	return e.Type
}

// GetEntityID returns the entity the event concerns
func (e *BaseEvent) GetEntityID() string {
	return e.EntityID
}

// Cancel stops delivery to lower priority listeners
func (e *BaseEvent) Cancel() {
	e.Cancelled = true
}

// IsCancelled returns whether the event has been cancelled
func (e *BaseEvent) IsCancelled() bool {
	return e.Cancelled
}

// AttributesUpdatedEvent carries an entity's freshly computed set. Display
// collaborators subscribe to it to rewrite names or bars.
type AttributesUpdatedEvent struct {
	BaseEvent
	Attributes attribute.Set
}

// NewAttributesUpdatedEvent creates an attributes.updated event
func NewAttributesUpdatedEvent(entityID string, set attribute.Set) *AttributesUpdatedEvent {
	return &AttributesUpdatedEvent{
		BaseEvent:  BaseEvent{Type: AttributesUpdated, EntityID: entityID},
		Attributes: set,
	}
}

// ProjectileAttachedEvent records which shooter armed a projectile
type ProjectileAttachedEvent struct {
	BaseEvent
	ShooterID  string
	Attributes attribute.Set
}

// NewProjectileAttachedEvent creates a projectile.attached event
func NewProjectileAttachedEvent(projectileID, shooterID string, set attribute.Set) *ProjectileAttachedEvent {
	return &ProjectileAttachedEvent{
		BaseEvent:  BaseEvent{Type: ProjectileAttached, EntityID: projectileID},
		ShooterID:  shooterID,
		Attributes: set,
	}
}

// NewEntityDroppedEvent creates an entity.dropped event
func NewEntityDroppedEvent(entityID string) *BaseEvent {
	return &BaseEvent{Type: EntityDropped, EntityID: entityID}
}

// ConsumerDroppedEvent names the consumer that unregistered
type ConsumerDroppedEvent struct {
	BaseEvent
	ConsumerID   string
	ConsumerName string
}

// NewConsumerDroppedEvent creates a consumer.dropped event
func NewConsumerDroppedEvent(consumerID, consumerName string) *ConsumerDroppedEvent {
	return &ConsumerDroppedEvent{
		BaseEvent:    BaseEvent{Type: ConsumerDropped},
		ConsumerID:   consumerID,
		ConsumerName: consumerName,
	}
}
