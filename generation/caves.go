package generation

import (
	"fmt"

	"golang.org/x/exp/rand"

	"hebi/components"
)

// CavesMap grows an irregular cave with cellular automata. Only the largest
// connected open region is kept; a single spawn facing up sits on the open
// cell nearest the centre.
type CavesMap struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	WallChance float32 `json:"wall_chance"` // Initial probability of an interior wall
	Iterations int     `json:"iterations"`  // Smoothing passes
}

// DefaultCavesMap returns a 29x29 cave
func DefaultCavesMap() *CavesMap {
	return &CavesMap{Width: 29, Height: 29, WallChance: 0.45, Iterations: 4}
}

// Validate rejects caves with no interior or out-of-range parameters
func (c *CavesMap) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("%w: caves %dx%d have no interior", ErrInvalidParameters, c.Width, c.Height)
	}
	if c.WallChance < 0 || c.WallChance > 1 {
		return fmt.Errorf("%w: wall_chance %v must be within [0, 1]", ErrInvalidParameters, c.WallChance)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations must not be negative", ErrInvalidParameters)
	}
	return nil
}

// Size returns the map dimensions in cells
func (c *CavesMap) Size() (int, int) {
	return c.Width, c.Height
}

// caveGrid is a row-major wall mask
type caveGrid struct {
	width, height int
	walls         []bool
}

func newCaveGrid(width, height int) *caveGrid {
	return &caveGrid{width: width, height: height, walls: make([]bool, max(width*height, 0))}
}

func (g *caveGrid) border(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

func (g *caveGrid) wall(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return true
	}
	return g.walls[y*g.width+x]
}

func (g *caveGrid) set(x, y int, wall bool) {
	g.walls[y*g.width+x] = wall
}

// adjacentWalls counts walls in the 3x3 block around (x, y), itself included.
// Cells off the map count as walls.
func (g *caveGrid) adjacentWalls(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if g.wall(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}

// MapData generates the cave, drawing one value per interior cell from rng.
// Caves without an interior come back solid with no spawn.
func (c *CavesMap) MapData(rng *rand.Rand) *components.MapData {
	if c.Width < 3 || c.Height < 3 {
		return solidMap(c.Width, c.Height)
	}

	grid := newCaveGrid(c.Width, c.Height)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			grid.set(x, y, grid.border(x, y) || rng.Float32() < c.WallChance)
		}
	}

	for i := 0; i < c.Iterations; i++ {
		grid = c.smooth(grid)
	}
	c.cleanupIsolated(grid)
	region := c.keepLargestRegion(grid)

	data := components.NewMapData(c.Width, c.Height)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if grid.wall(x, y) {
				data.SetCell(x, y, components.Wall())
			} else {
				data.SetCell(x, y, components.Empty())
			}
		}
	}

	if p, ok := nearestToCentre(region, c.Width/2, c.Height/2); ok {
		data.SetCell(p.X, p.Y, components.Spawn(components.Up))
	}
	return data
}

// solidMap fills every in-range cell of a width x height map with wall
func solidMap(width, height int) *components.MapData {
	data := components.NewMapData(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			data.SetCell(x, y, components.Wall())
		}
	}
	return data
}

// smooth applies one automaton step: crowded cells become walls, sparse
// cells open up and the border stays solid
func (c *CavesMap) smooth(grid *caveGrid) *caveGrid {
	next := newCaveGrid(grid.width, grid.height)
	copy(next.walls, grid.walls)

	for y := 1; y < grid.height-1; y++ {
		for x := 1; x < grid.width-1; x++ {
			walls := grid.adjacentWalls(x, y)
			if walls > 4 {
				next.set(x, y, true)
			} else if walls < 4 {
				next.set(x, y, false)
			}
		}
	}
	return next
}

// cleanupIsolated opens lone wall specks and fills enclosed single cells
func (c *CavesMap) cleanupIsolated(grid *caveGrid) {
	for y := 1; y < grid.height-1; y++ {
		for x := 1; x < grid.width-1; x++ {
			walls := grid.adjacentWalls(x, y)
			if grid.wall(x, y) && walls <= 2 {
				grid.set(x, y, false)
			} else if !grid.wall(x, y) && walls >= 7 {
				grid.set(x, y, true)
			}
		}
	}
}

// keepLargestRegion walls off every open region but the largest and returns
// its cells. A cave with no open cell gets its centre opened.
func (c *CavesMap) keepLargestRegion(grid *caveGrid) []components.Point {
	visited := make([]bool, len(grid.walls))
	var regions [][]components.Point
	largest := -1

	for y := 1; y < grid.height-1; y++ {
		for x := 1; x < grid.width-1; x++ {
			if grid.wall(x, y) || visited[y*grid.width+x] {
				continue
			}
			region := floodFill(grid, x, y, visited)
			regions = append(regions, region)
			if largest < 0 || len(region) > len(regions[largest]) {
				largest = len(regions) - 1
			}
		}
	}

	if largest < 0 {
		centre := components.Point{X: grid.width / 2, Y: grid.height / 2}
		grid.set(centre.X, centre.Y, false)
		return []components.Point{centre}
	}

	for i, region := range regions {
		if i == largest {
			continue
		}
		for _, p := range region {
			grid.set(p.X, p.Y, true)
		}
	}
	return regions[largest]
}

// floodFill collects the open cells 4-connected to (x, y)
func floodFill(grid *caveGrid, x, y int, visited []bool) []components.Point {
	var region []components.Point
	stack := []components.Point{{X: x, Y: y}}
	visited[y*grid.width+x] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, p)

		for _, d := range []components.Direction{components.Up, components.Down, components.Left, components.Right} {
			dx, dy := d.Delta()
			nx, ny := p.X+dx, p.Y+dy
			if grid.wall(nx, ny) || visited[ny*grid.width+nx] {
				continue
			}
			visited[ny*grid.width+nx] = true
			stack = append(stack, components.Point{X: nx, Y: ny})
		}
	}
	return region
}

// nearestToCentre picks the cell closest to (cx, cy), ties going to the
// earliest in row order
func nearestToCentre(cells []components.Point, cx, cy int) (components.Point, bool) {
	var best components.Point
	bestDist := -1
	for _, p := range cells {
		dx, dy := p.X-cx, p.Y-cy
		dist := dx*dx + dy*dy
		if bestDist < 0 || dist < bestDist || (dist == bestDist && (p.Y < best.Y || (p.Y == best.Y && p.X < best.X))) {
			best, bestDist = p, dist
		}
	}
	return best, bestDist >= 0
}
