package ecs

import "github.com/hajimehoshi/ebiten/v2"

// System defines an interface for per-frame logic units operating over the
// entity collection. Systems hold no per-entity state; all state lives on
// entities' components.
type System interface {
	// Priority orders update calls; lower runs first.
	Priority() int
	// IsActive gates whether the engine invokes this system at all.
	IsActive() bool
	// Update is called each processed frame.
	Update(e *Engine, dt float64)
}

// DrawSystem is implemented by systems that also draw. Draw ordering is
// independent of update ordering: lower DrawPriority draws first (further
// back).
type DrawSystem interface {
	System
	DrawPriority() int
	Draw(e *Engine, screen *ebiten.Image)
}

// InitSystem is implemented by systems that need setup before the first
// frame. Init runs when the engine starts, or immediately if the system is
// added while the engine is already running.
type InitSystem interface {
	Init(e *Engine)
}
