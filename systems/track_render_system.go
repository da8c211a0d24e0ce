package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-racer/assets"
	"ebiten-racer/config"
	"ebiten-racer/data"
	"ebiten-racer/ecs"
)

// tileImageKeys maps tile types to their asset keys.
var tileImageKeys = map[data.TileType]string{
	data.TileRoad:   assets.TrackRoad,
	data.TileWall:   assets.TrackWall,
	data.TileGrass:  assets.TrackGrass,
	data.TileFinish: assets.TrackFinish,
}

// tileFallbackColors substitute for missing tile images so the track is
// always visible even with no assets on disk.
var tileFallbackColors = map[data.TileType]color.Color{
	data.TileRoad:   color.RGBA{70, 70, 70, 255},
	data.TileWall:   color.RGBA{140, 60, 40, 255},
	data.TileGrass:  color.RGBA{40, 110, 45, 255},
	data.TileFinish: color.RGBA{220, 220, 220, 255},
}

// TrackRenderSystem draws the static tile grid as the scene background.
// It draws before every other draw-capable system.
type TrackRenderSystem struct {
	active bool
	track  *data.Track
	assets *assets.Manager
}

// NewTrackRenderSystem creates a track renderer over the given track and
// asset source.
func NewTrackRenderSystem(track *data.Track, am *assets.Manager) *TrackRenderSystem {
	return &TrackRenderSystem{
		active: true,
		track:  track,
		assets: am,
	}
}

func (s *TrackRenderSystem) Priority() int {
	return 90
}

func (s *TrackRenderSystem) DrawPriority() int {
	return 0
}

func (s *TrackRenderSystem) IsActive() bool {
	return s.active
}

// Update is a no-op; the track is immutable at runtime.
func (s *TrackRenderSystem) Update(e *ecs.Engine, dt float64) {}

// Draw paints every tile of the grid, scaling tile images to the
// configured tile size and falling back to a solid color per tile type
// when the image is unavailable.
func (s *TrackRenderSystem) Draw(e *ecs.Engine, screen *ebiten.Image) {
	for row := 0; row < s.track.Height; row++ {
		for col := 0; col < s.track.Width; col++ {
			tile := s.track.TileTypeAt(col, row)
			x := float64(col * config.TileSize)
			y := float64(row * config.TileSize)

			img, ok := s.assets.Image(tileImageKeys[tile])
			if !ok {
				vector.DrawFilledRect(screen,
					float32(x), float32(y),
					float32(config.TileSize), float32(config.TileSize),
					tileFallbackColors[tile], false)
				continue
			}

			op := &ebiten.DrawImageOptions{}
			bounds := img.Bounds()
			op.GeoM.Scale(
				float64(config.TileSize)/float64(bounds.Dx()),
				float64(config.TileSize)/float64(bounds.Dy()),
			)
			op.GeoM.Translate(x, y)
			screen.DrawImage(img, op)
		}
	}
}
