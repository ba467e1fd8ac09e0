package components

import (
	"sort"
	"strings"
)

// Point is a zero-based grid coordinate
type Point struct {
	X, Y int
}

// CellType classifies the terrain of one grid cell
type CellType int

const (
	CellEmpty CellType = iota
	CellWall
	CellSpawn
)

// Cell is the classification of one grid coordinate. Facing is only
// meaningful for CellSpawn.
type Cell struct {
	Type   CellType
	Facing Direction
}

// Empty, Wall and Spawn build the three cell variants
func Empty() Cell { return Cell{Type: CellEmpty} }
func Wall() Cell  { return Cell{Type: CellWall} }
func Spawn(facing Direction) Cell {
	return Cell{Type: CellSpawn, Facing: facing}
}

// IsWall reports whether the cell blocks movement
func (c Cell) IsWall() bool { return c.Type == CellWall }

// MapData is a generated level: a width x height grid of classified cells.
// Coordinates missing from Cells read as Empty.
type MapData struct {
	Width  int
	Height int
	Cells  map[Point]Cell
}

// NewMapData creates an empty map of the given size
func NewMapData(width, height int) *MapData {
	return &MapData{
		Width:  width,
		Height: height,
		Cells:  make(map[Point]Cell, max(width, 0)*max(height, 0)),
	}
}

// InBounds reports whether (x, y) lies on the grid
func (m *MapData) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsBorder reports whether (x, y) is on the outermost ring of the grid
func (m *MapData) IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == m.Width-1 || y == m.Height-1
}

// Cell returns the cell at (x, y). Out of bounds reads as Wall.
func (m *MapData) Cell(x, y int) Cell {
	if !m.InBounds(x, y) {
		return Wall()
	}
	return m.Cells[Point{X: x, Y: y}]
}

// SetCell sets the cell at (x, y); out of bounds writes are dropped
func (m *MapData) SetCell(x, y int, cell Cell) {
	if m.InBounds(x, y) {
		m.Cells[Point{X: x, Y: y}] = cell
	}
}

// IsWall returns true if the tile at (x, y) is a wall
func (m *MapData) IsWall(x, y int) bool {
	return m.Cell(x, y).IsWall()
}

// Points returns every stored coordinate ordered by row, then column
func (m *MapData) Points() []Point {
	points := make([]Point, 0, len(m.Cells))
	for p := range m.Cells {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}

// Spawns returns the spawn cells ordered by row, then column
func (m *MapData) Spawns() []Point {
	var spawns []Point
	for _, p := range m.Points() {
		if m.Cells[p].Type == CellSpawn {
			spawns = append(spawns, p)
		}
	}
	return spawns
}

// Count returns how many cells have the given type
func (m *MapData) Count(cellType CellType) int {
	n := 0
	for _, cell := range m.Cells {
		if cell.Type == cellType {
			n++
		}
	}
	return n
}

// String renders the map as text: '#' wall, '.' empty, arrows for spawns.
func (m *MapData) String() string {
	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			cell := m.Cell(x, y)
			switch cell.Type {
			case CellWall:
				b.WriteByte('#')
			case CellSpawn:
				b.WriteRune(cell.Facing.Glyph())
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
