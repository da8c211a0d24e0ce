package ecs

// ComponentKind is a unique identifier for component types. Each entity
// holds at most one component of each kind.
type ComponentKind uint8

const (
	KindTransform ComponentKind = iota
	KindPhysics
	KindSprite
	KindInput
)

// Component is the base interface for all components. A component receives
// a weak back-reference to its owning entity when attached; the reference
// is nil while the component is detached.
type Component interface {
	setOwner(e *Entity)
	Owner() *Entity
}

// Initializer is implemented by components that need setup when attached.
type Initializer interface {
	Init()
}

// Updater is implemented by components with per-tick behavior.
type Updater interface {
	Update(dt float64)
}

// Cleaner is implemented by components that must release state when
// replaced or removed.
type Cleaner interface {
	Cleanup()
}

// BaseComponent provides the owner back-reference plumbing. Embed it in
// every concrete component.
type BaseComponent struct {
	owner *Entity
}

func (b *BaseComponent) setOwner(e *Entity) {
	b.owner = e
}

// Owner returns the owning entity, or nil if the component is detached.
func (b *BaseComponent) Owner() *Entity {
	return b.owner
}
