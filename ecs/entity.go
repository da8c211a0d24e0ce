package ecs

// EntityID is a unique identifier for an entity. IDs are assigned by the
// engine on registration, monotonically increasing, and never reused
// within a session.
type EntityID uint64

// Entity represents a game object: an identity plus a collection of
// components keyed by kind, a set of tags for coarse grouping, and an
// active flag gating whether systems process it.
type Entity struct {
	// ID is zero until the entity is registered with an engine.
	ID         EntityID
	components map[ComponentKind]Component
	tags       map[string]bool
	active     bool
}

// NewEntity creates a detached entity. It has no id and is not visible to
// any system until registered via Engine.AddEntity.
func NewEntity() *Entity {
	return &Entity{
		components: make(map[ComponentKind]Component),
		tags:       make(map[string]bool),
		active:     true,
	}
}

// AddComponent attaches a component under the given kind. An existing
// component of the same kind is cleaned up first and then replaced.
func (e *Entity) AddComponent(kind ComponentKind, c Component) {
	if old, exists := e.components[kind]; exists {
		if cl, ok := old.(Cleaner); ok {
			cl.Cleanup()
		}
	}
	c.setOwner(e)
	e.components[kind] = c
	if in, ok := c.(Initializer); ok {
		in.Init()
	}
}

// RemoveComponent cleans up and detaches the component of the given kind.
// It is a no-op if the entity has no such component.
func (e *Entity) RemoveComponent(kind ComponentKind) {
	c, exists := e.components[kind]
	if !exists {
		return
	}
	if cl, ok := c.(Cleaner); ok {
		cl.Cleanup()
	}
	delete(e.components, kind)
}

// GetComponent returns the component of the given kind. Absence is a
// normal, checkable condition, not an error.
func (e *Entity) GetComponent(kind ComponentKind) (Component, bool) {
	c, exists := e.components[kind]
	return c, exists
}

// HasComponent checks if the entity has a component of the given kind.
func (e *Entity) HasComponent(kind ComponentKind) bool {
	_, exists := e.components[kind]
	return exists
}

// HasComponents checks if the entity has all of the given kinds.
func (e *Entity) HasComponents(kinds ...ComponentKind) bool {
	for _, kind := range kinds {
		if _, exists := e.components[kind]; !exists {
			return false
		}
	}
	return true
}

// AddTag adds a tag to the entity.
func (e *Entity) AddTag(tag string) {
	e.tags[tag] = true
}

// HasTag checks if the entity has a specific tag.
func (e *Entity) HasTag(tag string) bool {
	return e.tags[tag]
}

// RemoveTag removes a tag from the entity.
func (e *Entity) RemoveTag(tag string) {
	delete(e.tags, tag)
}

// SetActive toggles whether systems process this entity.
func (e *Entity) SetActive(active bool) {
	e.active = active
}

// IsActive reports whether systems process this entity.
func (e *Entity) IsActive() bool {
	return e.active
}

// cleanup runs the cleanup hook of every owned component. The engine calls
// this when the entity is deregistered.
func (e *Entity) cleanup() {
	for kind, c := range e.components {
		if cl, ok := c.(Cleaner); ok {
			cl.Cleanup()
		}
		delete(e.components, kind)
	}
}
