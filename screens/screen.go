package screens

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Error constants for screen transitions
var (
	ErrStartRace  = errors.New("start race")
	ErrBackToMenu = errors.New("back to menu")
	ErrQuit       = errors.New("quit")
)

// Screen represents a top-level game mode (menu, race).
type Screen interface {
	// Update updates the screen state. Transition sentinels are returned
	// as errors and handled by the root game.
	Update() error
	// Draw draws the screen
	Draw(screen *ebiten.Image)
	// Layout handles screen layout
	Layout(outsideWidth, outsideHeight int) (int, int)
}
