package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"hebi/components"
)

// directionKeys maps each direction to the keys that steer it
var directionKeys = map[components.Direction][]ebiten.Key{
	components.Up:    {ebiten.KeyArrowUp, ebiten.KeyK},
	components.Down:  {ebiten.KeyArrowDown, ebiten.KeyJ},
	components.Left:  {ebiten.KeyArrowLeft, ebiten.KeyH},
	components.Right: {ebiten.KeyArrowRight, ebiten.KeyL},
}

// Keyboard reports held direction keys from ebiten
type Keyboard struct{}

// NewKeyboard creates a keyboard input source
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Pressed reports whether any key bound to dir is held
func (k *Keyboard) Pressed(dir components.Direction) bool {
	for _, key := range directionKeys[dir] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
