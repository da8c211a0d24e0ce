package systems

import (
	"ebiten-racer/ecs"
)

// MovementSystem advances physics and then integrates transforms for every
// active entity that has both. The order is load-bearing: the physics step
// recomputes velocity from direction and speed before the transform
// integrates position with it.
type MovementSystem struct {
	active bool
}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{active: true}
}

func (s *MovementSystem) Priority() int {
	return 10
}

func (s *MovementSystem) IsActive() bool {
	return s.active
}

// Update advances every moving entity by one tick.
func (s *MovementSystem) Update(e *ecs.Engine, dt float64) {
	for _, entity := range e.EntitiesWith(ecs.KindTransform, ecs.KindPhysics) {
		physComp, _ := entity.GetComponent(ecs.KindPhysics)
		if u, ok := physComp.(ecs.Updater); ok {
			u.Update(dt)
		}

		trComp, _ := entity.GetComponent(ecs.KindTransform)
		if u, ok := trComp.(ecs.Updater); ok {
			u.Update(dt)
		}
	}
}
