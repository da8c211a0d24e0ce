package systems

import (
	"ebiten-racer/ecs"
)

// InputSystem refreshes each car's action snapshot and runs its control
// law. It runs before movement so forces land in the same tick's physics
// step.
type InputSystem struct {
	active bool
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{active: true}
}

func (s *InputSystem) Priority() int {
	return 5
}

func (s *InputSystem) IsActive() bool {
	return s.active
}

// SetActive gates the whole system; the race scene disables it during the
// starting countdown.
func (s *InputSystem) SetActive(active bool) {
	s.active = active
}

// Update runs the input component of every active entity that has one.
func (s *InputSystem) Update(e *ecs.Engine, dt float64) {
	for _, entity := range e.EntitiesWith(ecs.KindInput) {
		c, _ := entity.GetComponent(ecs.KindInput)
		if u, ok := c.(ecs.Updater); ok {
			u.Update(dt)
		}
	}
}
