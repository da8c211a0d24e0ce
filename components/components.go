package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-racer/ecs"
)

// Transform stores an entity's placement in the world: position in pixels,
// rotation in radians and a non-uniform scale. Velocity is written by
// physics each tick and consumed only here; rendering and input never
// write it.
type Transform struct {
	ecs.BaseComponent
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	VelX     float64
	VelY     float64
}

// NewTransform creates a transform at the given position with unit scale.
func NewTransform(x, y float64) *Transform {
	return &Transform{
		X:      x,
		Y:      y,
		ScaleX: 1,
		ScaleY: 1,
	}
}

// Update integrates position from velocity.
func (t *Transform) Update(dt float64) {
	t.X += t.VelX * dt
	t.Y += t.VelY * dt
}

// Sprite stores rendering information for an entity. The image handle may
// be nil, in which case the render system falls back to a solid shape.
// Frame coordinates select a sub-rectangle of the image for sprite-sheet
// rendering when the frame size differs from the display size.
type Sprite struct {
	ecs.BaseComponent
	Image       *ebiten.Image
	Width       float64
	Height      float64
	OffsetX     float64
	OffsetY     float64
	Visible     bool
	Opacity     float64
	Tint        color.Color
	FrameX      int
	FrameY      int
	FrameWidth  int
	FrameHeight int
}

// NewSprite creates a visible, fully opaque sprite drawn at the given
// display size, with the frame covering the whole image.
func NewSprite(img *ebiten.Image, width, height float64) *Sprite {
	s := &Sprite{
		Image:       img,
		Width:       width,
		Height:      height,
		Visible:     true,
		Opacity:     1,
		FrameWidth:  int(width),
		FrameHeight: int(height),
	}
	if img != nil {
		bounds := img.Bounds()
		s.FrameWidth = bounds.Dx()
		s.FrameHeight = bounds.Dy()
	}
	return s
}
