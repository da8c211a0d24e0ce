package screens

import (
	"ebiten-racer/config"
)

// BaseScreen provides common functionality for all screens
type BaseScreen struct{}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Layout reports the fixed logical render size.
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
