package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"ebiten-racer/config"
)

// StartScreen handles the game's start menu
type StartScreen struct {
	*BaseScreen
	selectedOption int
	options        []string
	titleColor     color.Color
	optionColor    color.Color
	selectedColor  color.Color
	errColor       color.Color
	face           font.Face
	loadErr        error
}

// NewStartScreen creates a new start screen
func NewStartScreen() *StartScreen {
	return &StartScreen{
		BaseScreen:    NewBaseScreen(),
		options:       []string{"Start Race", "Quit"},
		titleColor:    color.RGBA{255, 210, 70, 255},
		optionColor:   color.RGBA{180, 180, 180, 255},
		selectedColor: color.RGBA{255, 255, 255, 255},
		errColor:      color.RGBA{255, 90, 90, 255},
		face:          basicfont.Face7x13,
	}
}

// SetError shows a bootstrap failure (typically asset loading) on the
// menu; the game stays here instead of progressing to the race.
func (s *StartScreen) SetError(err error) {
	s.loadErr = err
}

// Update handles menu navigation
func (s *StartScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.selectedOption--
		if s.selectedOption < 0 {
			s.selectedOption = len(s.options) - 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.selectedOption = (s.selectedOption + 1) % len(s.options)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch s.options[s.selectedOption] {
		case "Start Race":
			return ErrStartRace
		case "Quit":
			return ErrQuit
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}

	return nil
}

// Draw draws the menu
func (s *StartScreen) Draw(screen *ebiten.Image) {
	centerX := config.ScreenWidth / 2

	title := "TILE TRACK RACER"
	text.Draw(screen, title, s.face, centerX-len(title)*7/2, config.ScreenHeight/3, s.titleColor)

	subtitle := "P1: arrows   P2: WASD"
	text.Draw(screen, subtitle, s.face, centerX-len(subtitle)*7/2, config.ScreenHeight/3+24, s.optionColor)

	for i, option := range s.options {
		clr := s.optionColor
		label := option
		if i == s.selectedOption {
			clr = s.selectedColor
			label = "> " + option
		}
		text.Draw(screen, label, s.face, centerX-60, config.ScreenHeight/2+i*24, clr)
	}

	if s.loadErr != nil {
		msg := s.loadErr.Error()
		text.Draw(screen, msg, s.face, centerX-len(msg)*7/2, config.ScreenHeight-48, s.errColor)
	}
}
