package events

// EventType names an attribute engine notification
type EventType string

const (
	// AttributesUpdated fires after an entity's effective set is recomputed
	// and cached
	AttributesUpdated EventType = "attributes.updated"

	// ProjectileAttached fires when a shooter's aggregate is stored on a
	// projectile
	ProjectileAttached EventType = "projectile.attached"

	// EntityDropped fires when an entity's scoped data, projectile attachment
	// and cache entry are released
	EntityDropped EventType = "entity.dropped"

	// ConsumerDropped fires when a consumer unregisters and its data is removed
	ConsumerDropped EventType = "consumer.dropped"
)

// String returns the event type name
func (t EventType) String() string {
	return string(t)
}
