package ecs

import "github.com/hajimehoshi/ebiten/v2"

// Scene is the per-mode hook the engine drives around its systems: Update
// runs before the systems each processed frame, Render runs before the
// draw-capable systems.
type Scene interface {
	Update(e *Engine, dt float64)
	Render(e *Engine, screen *ebiten.Image)
}
