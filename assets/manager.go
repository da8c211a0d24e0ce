package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Logical asset keys used by the demo.
const (
	Player1Car  = "PLAYER1_CAR"
	Player2Car  = "PLAYER2_CAR"
	TrackRoad   = "TRACK_ROAD"
	TrackWall   = "TRACK_WALL"
	TrackGrass  = "TRACK_GRASS"
	TrackFinish = "TRACK_FINISH"
)

// Manager maps logical asset keys to loaded images. It is constructed
// explicitly during bootstrap and passed to the systems that draw.
type Manager struct {
	images map[string]*ebiten.Image
}

// NewManager creates an empty asset manager.
func NewManager() *Manager {
	return &Manager{
		images: make(map[string]*ebiten.Image),
	}
}

// LoadImages decodes every file in the key-to-path mapping. Loading stops
// at the first failure; the caller is expected to halt progression to
// gameplay and surface the error.
func (m *Manager) LoadImages(paths map[string]string) error {
	for key, path := range paths {
		img, err := loadImage(path)
		if err != nil {
			return fmt.Errorf("load image %q from %s: %w", key, path, err)
		}
		m.images[key] = img
	}
	return nil
}

// Image returns the image for a logical key. A missing key is a normal,
// checkable condition: renderers fall back to solid shapes.
func (m *Manager) Image(key string) (*ebiten.Image, bool) {
	img, ok := m.images[key]
	return img, ok
}

func loadImage(path string) (*ebiten.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// DefaultImagePaths maps the demo's asset keys to their files on disk.
func DefaultImagePaths() map[string]string {
	return map[string]string{
		Player1Car:  "assets/car_red.png",
		Player2Car:  "assets/car_blue.png",
		TrackRoad:   "assets/tile_road.png",
		TrackWall:   "assets/tile_wall.png",
		TrackGrass:  "assets/tile_grass.png",
		TrackFinish: "assets/tile_finish.png",
	}
}
