package systems

import (
	"ebiten-racer/ecs"
)

// Event type constants
const (
	EventCollision ecs.EventType = "collision"
	EventFinish    ecs.EventType = "finish"
)

// CollisionEvent is emitted when a car hits a non-navigable tile.
type CollisionEvent struct {
	EntityID ecs.EntityID
	Col      int // grid cell that was struck
	Row      int
}

// Type returns the event type
func (e CollisionEvent) Type() ecs.EventType {
	return EventCollision
}

// FinishEvent is emitted when a car crosses a finish tile.
type FinishEvent struct {
	EntityID ecs.EntityID
	Lap      int
}

// Type returns the event type
func (e FinishEvent) Type() ecs.EventType {
	return EventFinish
}
