package generation

import (
	"fmt"

	"golang.org/x/exp/rand"

	"hebi/components"
)

// ArenaMap is an open field enclosed by a wall, with one spawn in the
// centre facing up.
type ArenaMap struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultArenaMap returns a 29x29 arena
func DefaultArenaMap() *ArenaMap {
	return &ArenaMap{Width: 29, Height: 29}
}

// Validate rejects arenas with no interior cell
func (a *ArenaMap) Validate() error {
	if a.Width < 3 || a.Height < 3 {
		return fmt.Errorf("%w: arena %dx%d has no interior", ErrInvalidParameters, a.Width, a.Height)
	}
	return nil
}

// Size returns the map dimensions in cells
func (a *ArenaMap) Size() (int, int) {
	return a.Width, a.Height
}

// MapData builds the arena. It draws nothing from rng.
func (a *ArenaMap) MapData(rng *rand.Rand) *components.MapData {
	data := components.NewMapData(a.Width, a.Height)
	for x := 0; x < a.Width; x++ {
		for y := 0; y < a.Height; y++ {
			if data.IsBorder(x, y) {
				data.SetCell(x, y, components.Wall())
			} else {
				data.SetCell(x, y, components.Empty())
			}
		}
	}

	cx, cy := a.Width/2, a.Height/2
	if !data.IsBorder(cx, cy) {
		data.SetCell(cx, cy, components.Spawn(components.Up))
	}
	return data
}
