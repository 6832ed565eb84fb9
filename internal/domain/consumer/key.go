package consumer

// Key identifies an independent registrant (a plugin or module) that attaches
// private attribute data to entities. Stores index entries by ID alone, so a
// key rebuilt with NewKey from a persisted ID addresses the same data.
type Key struct {
	id   string
	name string
}

// NewKey builds a key from a stored ID and display name. Most callers get
// keys from Registry.Register instead.
func NewKey(id, name string) Key {
	return Key{id: id, name: name}
}

// ID returns the opaque identifier stores persist
func (k Key) ID() string { return k.id }

// Name returns the registrant's display name
func (k Key) Name() string { return k.name }

// IsZero reports whether the key was never issued
func (k Key) IsZero() bool { return k.id == "" }

func (k Key) String() string {
	if k.name == "" {
		return k.id
	}
	return k.name + "(" + k.id + ")"
}
