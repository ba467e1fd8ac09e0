package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// BaseScreen provides common functionality for all screens
type BaseScreen struct {
	// Logical screen dimensions
	width  int
	height int
}

// NewBaseScreen creates a base screen with a fixed logical size
func NewBaseScreen(width, height int) *BaseScreen {
	return &BaseScreen{width: width, height: height}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {
}

// Layout keeps the logical size regardless of the window
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width, s.height
}

// GetWidth returns the screen width
func (s *BaseScreen) GetWidth() int {
	return s.width
}

// GetHeight returns the screen height
func (s *BaseScreen) GetHeight() int {
	return s.height
}
