package systems

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"ebiten-racer/components"
	"ebiten-racer/config"
	"ebiten-racer/ecs"
)

// RenderSystem draws every active entity with a transform and a sprite,
// plus the HUD (per-car speed readouts, race status line, message log).
// It draws last so sprites and HUD sit on top of the track.
type RenderSystem struct {
	active bool
	log    *MessageLog
	face   font.Face

	// StatusText, when set, supplies the line drawn top-center each frame.
	// The race scene uses it for the countdown and race clock.
	StatusText func() string
}

// NewRenderSystem creates a render system reporting into the given log.
func NewRenderSystem(log *MessageLog) *RenderSystem {
	return &RenderSystem{
		active: true,
		log:    log,
		face:   basicfont.Face7x13,
	}
}

func (s *RenderSystem) Priority() int {
	return 100
}

func (s *RenderSystem) DrawPriority() int {
	return 100
}

func (s *RenderSystem) IsActive() bool {
	return s.active
}

// Update is a no-op; all drawing happens in Draw.
func (s *RenderSystem) Update(e *ecs.Engine, dt float64) {}

// Draw renders sprites and then the HUD.
func (s *RenderSystem) Draw(e *ecs.Engine, screen *ebiten.Image) {
	for _, entity := range e.EntitiesWith(ecs.KindTransform, ecs.KindSprite) {
		trComp, _ := entity.GetComponent(ecs.KindTransform)
		spComp, _ := entity.GetComponent(ecs.KindSprite)
		s.drawSprite(screen, trComp.(*components.Transform), spComp.(*components.Sprite))
	}

	s.drawHUD(e, screen)
}

// drawSprite blits one sprite: the image is centered, scaled from its
// frame size to the display size, rotated, then translated to the entity
// position plus the sprite offset. A frame smaller than the image selects
// a sub-rectangle for sprite-sheet playback. Entities with no image get a
// solid placeholder box.
func (s *RenderSystem) drawSprite(screen *ebiten.Image, tr *components.Transform, sp *components.Sprite) {
	if !sp.Visible || sp.Opacity <= 0 {
		return
	}

	if sp.Image == nil {
		clr := sp.Tint
		if clr == nil {
			clr = color.RGBA{200, 200, 200, 255}
		}
		vector.DrawFilledRect(screen,
			float32(tr.X+sp.OffsetX-sp.Width/2), float32(tr.Y+sp.OffsetY-sp.Height/2),
			float32(sp.Width), float32(sp.Height),
			clr, false)
		return
	}

	img := sp.Image
	frameW, frameH := sp.FrameWidth, sp.FrameHeight
	bounds := img.Bounds()
	if frameW != bounds.Dx() || frameH != bounds.Dy() {
		rect := image.Rect(sp.FrameX, sp.FrameY, sp.FrameX+frameW, sp.FrameY+frameH)
		img = img.SubImage(rect).(*ebiten.Image)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(frameW)/2, -float64(frameH)/2)
	op.GeoM.Scale(
		sp.Width/float64(frameW)*tr.ScaleX,
		sp.Height/float64(frameH)*tr.ScaleY,
	)
	op.GeoM.Rotate(tr.Rotation)
	op.GeoM.Translate(tr.X+sp.OffsetX, tr.Y+sp.OffsetY)
	op.ColorScale.ScaleAlpha(float32(sp.Opacity))
	if sp.Tint != nil {
		op.ColorScale.ScaleWithColor(sp.Tint)
	}
	screen.DrawImage(img, op)
}

// drawHUD draws the speed readouts, the status line and the recent
// messages.
func (s *RenderSystem) drawHUD(e *ecs.Engine, screen *ebiten.Image) {
	line := 0
	for _, entity := range e.EntitiesWithTag("car") {
		physComp, ok := entity.GetComponent(ecs.KindPhysics)
		if !ok {
			continue
		}
		phys, ok := physComp.(*components.CarPhysics)
		if !ok {
			continue
		}
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("car %d: %4.0f px/s", entity.ID, phys.Speed()),
			8, 8+line*16)
		line++
	}

	if s.StatusText != nil {
		status := s.StatusText()
		w := len(status) * 7 // basicfont advance
		text.Draw(screen, status, s.face,
			(config.ScreenWidth-w)/2, 24, color.White)
	}

	for i, msg := range s.log.RecentMessages(4) {
		text.Draw(screen, msg, s.face,
			8, config.ScreenHeight-12-i*16, color.RGBA{210, 210, 210, 255})
	}
}
