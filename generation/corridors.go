package generation

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"

	"hebi/components"
)

// CorridorsMap generates a level with two serpentine corridors: rows of
// wall teeth hang from the top edge and rise from the bottom edge, with the
// two rows offset horizontally so the snake has to weave between them.
type CorridorsMap struct {
	Width                int     `json:"width"`
	Height               int     `json:"height"`
	CorridorWidth        int     `json:"corridor_width"`
	CorridorHeight       int     `json:"corridor_height"`
	TopCorridorOffset    int     `json:"top_corridor_offset"`
	BottomCorridorOffset int     `json:"bottom_corridor_offset"`
	WallVariance         float32 `json:"wall_variance"`
}

// DefaultCorridorsMap returns the stock corridors layout
func DefaultCorridorsMap() *CorridorsMap {
	return &CorridorsMap{
		Width:                34,
		Height:               17,
		CorridorWidth:        3,
		CorridorHeight:       10,
		TopCorridorOffset:    3,
		BottomCorridorOffset: 0,
		WallVariance:         0.5,
	}
}

// Validate rejects parameters outside the generator's domain. Degenerate but
// in-domain combinations (corridors wider than the map, no interior rows)
// are accepted and simply produce sparse maps.
func (c *CorridorsMap) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidParameters, c.Width, c.Height)
	case c.CorridorWidth < 1:
		return fmt.Errorf("%w: corridor_width %d", ErrInvalidParameters, c.CorridorWidth)
	case c.CorridorHeight < 1:
		return fmt.Errorf("%w: corridor_height %d", ErrInvalidParameters, c.CorridorHeight)
	case c.WallVariance < 0 || c.WallVariance > 1:
		return fmt.Errorf("%w: wall_variance %v not in [0, 1]", ErrInvalidParameters, c.WallVariance)
	}
	return nil
}

// Size returns the map dimensions in cells
func (c *CorridorsMap) Size() (int, int) {
	return c.Width, c.Height
}

// wallHeights memoizes one random wall height per column
type wallHeights struct {
	heights  map[int]int
	height   float32
	variance float32
}

func newWallHeights(corridorHeight int, variance float32) *wallHeights {
	return &wallHeights{
		heights:  make(map[int]int),
		height:   float32(corridorHeight),
		variance: variance,
	}
}

// get returns the wall height for column x, drawing it on first use
func (w *wallHeights) get(rng *rand.Rand, x int) int {
	if h, ok := w.heights[x]; ok {
		return h
	}
	h := int(w.height*(1-w.variance) + w.height*w.variance*rng.Float32())
	w.heights[x] = h
	return h
}

// columns returns the memoized column indices in ascending order
func (w *wallHeights) columns() []int {
	xs := make([]int, 0, len(w.heights))
	for x := range w.heights {
		xs = append(xs, x)
	}
	sort.Ints(xs)
	return xs
}

// MapData generates the level. rng is advanced by the call; the same
// parameters and rng state always yield the same map.
func (c *CorridorsMap) MapData(rng *rand.Rand) *components.MapData {
	data, _, _ := c.generate(rng)
	return data
}

func (c *CorridorsMap) generate(rng *rand.Rand) (*components.MapData, *wallHeights, *wallHeights) {
	width, height := c.Width, c.Height
	data := components.NewMapData(width, height)

	top := newWallHeights(c.CorridorHeight, c.WallVariance)
	bottom := newWallHeights(c.CorridorHeight, c.WallVariance)

	period := max(c.CorridorWidth+1, 1)
	lastWallColumn := width - c.CorridorWidth - 1
	inWallRange := func(x int) bool {
		return x > 2 && x < lastWallColumn
	}

	isWall := func(x, y int) bool {
		if x == 0 || x == width-1 || y == 0 || y == height-1 {
			return true
		}
		if (x-c.TopCorridorOffset)%period == 0 && inWallRange(x) && y < top.get(rng, x)+1 {
			return true
		}
		if (x-c.BottomCorridorOffset)%period == 0 && inWallRange(x) && y > height-bottom.get(rng, x)-2 {
			return true
		}
		return false
	}

	gap := 1
	blocked := false
	for x := 0; x < width; x++ {
		previouslyBlocked := blocked
		blocked = true
		for y := 0; y < height; y++ {
			if isWall(x, y) {
				data.SetCell(x, y, components.Wall())
			} else {
				blocked = false
				data.SetCell(x, y, components.Empty())
			}
		}

		// A fully walled column would cut the map in two. Punch one hole,
		// reusing the same row across a run of blocked columns.
		if blocked && x > 0 && x < width-1 && height > 2 {
			if !previouslyBlocked {
				gap = 1 + rng.Intn(height-2)
			}
			data.SetCell(x, gap, components.Empty())
		}
	}

	// Only a notch landing exactly on the top or bottom border row is
	// skipped. Rows off the grid still place their spawn; the notch cells
	// are dropped by SetCell.
	onBorderRow := func(y int) bool {
		return y == 0 || y == height-1
	}

	for _, x := range bottom.columns() {
		y := height - bottom.heights[x] - 2
		if onBorderRow(y) {
			continue
		}
		c.carveNotch(data, x, y)
		c.markSpawn(data, x+1, height-3, components.Up)
	}
	for _, x := range top.columns() {
		y := top.heights[x] + 1
		if onBorderRow(y) {
			continue
		}
		c.carveNotch(data, x, y)
		c.markSpawn(data, x+1, 2, components.Down)
	}

	return data, top, bottom
}

// carveNotch clears the three cells centred on (x, y). Cells on the border
// or off the grid are left alone.
func (c *CorridorsMap) carveNotch(data *components.MapData, x, y int) {
	for dx := -1; dx <= 1; dx++ {
		if !data.IsBorder(x+dx, y) {
			data.SetCell(x+dx, y, components.Empty())
		}
	}
}

// markSpawn places a spawn marker unless it would replace the border wall
func (c *CorridorsMap) markSpawn(data *components.MapData, x, y int, facing components.Direction) {
	if data.InBounds(x, y) && !data.IsBorder(x, y) {
		data.SetCell(x, y, components.Spawn(facing))
	}
}
